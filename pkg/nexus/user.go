package nexus

import "net/http"

// formContentType overrides the persistent JSON content type on the two
// tracked-mods mutation endpoints, which expect form encoding.
var formContentType = map[string]string{
	"content-type": "application/x-www-form-urlencoded",
}

// ValidateUser returns the details of the user owning the API key.
func (c *Client) ValidateUser() (any, error) {
	return c.dispatch(http.MethodGet, "users/validate.json", nil, nil, nil)
}

// TrackedMods lists all mods tracked by the current user.
func (c *Client) TrackedMods() (any, error) {
	return c.dispatch(http.MethodGet, "user/tracked_mods.json", nil, nil, nil)
}

// TrackMod starts tracking a mod for the current user.
func (c *Client) TrackMod(game, modID string) error {
	_, err := c.dispatch(http.MethodPost, "user/tracked_mods.json",
		map[string]string{"domain_name": game},
		map[string]string{"mod_id": modID},
		formContentType,
	)
	return err
}

// UntrackMod stops tracking a mod for the current user.
func (c *Client) UntrackMod(game, modID string) error {
	_, err := c.dispatch(http.MethodDelete, "user/tracked_mods.json",
		map[string]string{"domain_name": game},
		map[string]string{"mod_id": modID},
		formContentType,
	)
	return err
}

// Endorsements lists all endorsements given by the current user.
func (c *Client) Endorsements() (any, error) {
	return c.dispatch(http.MethodGet, "user/endorsements.json", nil, nil, nil)
}
