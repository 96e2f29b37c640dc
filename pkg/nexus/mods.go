package nexus

import (
	"fmt"
	"net/http"
)

// Mod retrieves the details of a mod in the given game.
func (c *Client) Mod(game, modID string) (any, error) {
	return c.dispatch(http.MethodGet,
		fmt.Sprintf("games/%s/mods/%s.json", game, modID), nil, nil, nil)
}

// SearchModByHash looks up a mod by the MD5 hash of one of its files.
func (c *Client) SearchModByHash(game, md5Hash string) (any, error) {
	return c.dispatch(http.MethodGet,
		fmt.Sprintf("games/%s/mods/md5_search/%s.json", game, md5Hash), nil, nil, nil)
}

// EndorseMod endorses a mod as the current user.
func (c *Client) EndorseMod(game, modID string) (any, error) {
	return c.dispatch(http.MethodPost,
		fmt.Sprintf("games/%s/mods/%s/endorse.json", game, modID), nil, nil, nil)
}

// AbstainMod abstains from endorsing a mod as the current user.
func (c *Client) AbstainMod(game, modID string) (any, error) {
	return c.dispatch(http.MethodPost,
		fmt.Sprintf("games/%s/mods/%s/abstain.json", game, modID), nil, nil, nil)
}

// ModChangelogs lists the changelogs of a mod.
func (c *Client) ModChangelogs(game, modID string) (any, error) {
	return c.dispatch(http.MethodGet,
		fmt.Sprintf("games/%s/mods/%s/changelogs.json", game, modID), nil, nil, nil)
}
