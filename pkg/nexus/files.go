package nexus

import (
	"fmt"
	"net/http"
	"strings"
)

// ModFiles lists the files of a mod, optionally filtered by category.
// Known categories: "main", "update", "optional", "old_version" and
// "miscellaneous". With no categories the filter is omitted entirely.
func (c *Client) ModFiles(game, modID string, categories ...string) (any, error) {
	var query map[string]string
	if len(categories) > 0 {
		query = map[string]string{"category": strings.Join(categories, ",")}
	}
	return c.dispatch(http.MethodGet,
		fmt.Sprintf("games/%s/mods/%s/files.json", game, modID), query, nil, nil)
}

// ModFile retrieves the details of one file of a mod.
func (c *Client) ModFile(game, modID, fileID string) (any, error) {
	return c.dispatch(http.MethodGet,
		fmt.Sprintf("games/%s/mods/%s/files/%s.json", game, modID, fileID), nil, nil, nil)
}

// ModFileDownloadLink generates a download link for a mod file.
//
// Non-premium accounts must supply the nxm key and expiry obtained from a
// "Download with manager" link on the site; premium accounts may pass
// empty strings for both, in which case no query parameters are sent.
func (c *Client) ModFileDownloadLink(game, modID, fileID, nxmKey, expires string) (any, error) {
	var query map[string]string
	if nxmKey != "" && expires != "" {
		query = map[string]string{"key": nxmKey, "expires": expires}
	}
	return c.dispatch(http.MethodGet,
		fmt.Sprintf("games/%s/mods/%s/files/%s/download_link.json", game, modID, fileID),
		query, nil, nil)
}
