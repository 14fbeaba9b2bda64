// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import "fmt"

// BuildQuery assembles the export API search_query value from the
// category and free-text inputs. At least one must be non-empty.
//
//	category + query -> "cat:<category> AND <query>"
//	category only    -> "cat:<category>"
//	query only       -> the query unchanged
func BuildQuery(category, query string) (string, error) {
	switch {
	case category != "" && query != "":
		return fmt.Sprintf("cat:%s AND %s", category, query), nil
	case category != "":
		return "cat:" + category, nil
	case query != "":
		return query, nil
	}
	return "", fmt.Errorf("no category or query provided")
}
