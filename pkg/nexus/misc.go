package nexus

import "net/http"

// ColourSchemes lists all colour schemes, including the primary, secondary
// and darker colours.
func (c *Client) ColourSchemes() (any, error) {
	return c.dispatch(http.MethodGet, "colourschemes.json", nil, nil, nil)
}
