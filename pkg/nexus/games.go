package nexus

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// updatedModsParams carries the one client-side validated argument in the
// library: the update window accepted by UpdatedMods.
type updatedModsParams struct {
	Period string `validate:"required,oneof=1d 1w 1m"`
}

// Game returns the given game along with its download count, file count
// and categories.
func (c *Client) Game(game string) (any, error) {
	return c.dispatch(http.MethodGet, fmt.Sprintf("games/%s.json", game), nil, nil, nil)
}

// Games lists all games. Unapproved games are included only when
// includeUnapproved is true.
func (c *Client) Games(includeUnapproved bool) (any, error) {
	query := map[string]string{
		"include_unapproved": strconv.FormatBool(includeUnapproved),
	}
	return c.dispatch(http.MethodGet, "games.json", query, nil, nil)
}

// UpdatedMods lists the mods of a game updated within the given period,
// with timestamps of their last update. Accepted periods: "1d" (one day),
// "1w" (one week) and "1m" (one month); anything else fails with
// ErrInvalidArgument before any request is made.
func (c *Client) UpdatedMods(game, period string) (any, error) {
	if err := validate.Struct(updatedModsParams{Period: period}); err != nil {
		return nil, ErrInvalidArgument.MsgErr(
			"allowed values for period: '1d', '1w', '1m'", err)
	}
	return c.dispatch(http.MethodGet,
		fmt.Sprintf("games/%s/mods/updated.json", game),
		map[string]string{"period": period}, nil, nil)
}

// LatestAddedMods retrieves the 10 most recently added mods for a game.
func (c *Client) LatestAddedMods(game string) (any, error) {
	return c.dispatch(http.MethodGet,
		fmt.Sprintf("games/%s/mods/latest_added.json", game), nil, nil, nil)
}

// LatestUpdatedMods retrieves the 10 most recently updated mods for a game.
func (c *Client) LatestUpdatedMods(game string) (any, error) {
	return c.dispatch(http.MethodGet,
		fmt.Sprintf("games/%s/mods/latest_updated.json", game), nil, nil, nil)
}

// TrendingMods retrieves the 10 currently trending mods for a game.
func (c *Client) TrendingMods(game string) (any, error) {
	return c.dispatch(http.MethodGet,
		fmt.Sprintf("games/%s/mods/trending.json", game), nil, nil, nil)
}
