package inline

import (
	"encoding/json"
	"io"

	"github.com/laradl/laradl/catalog"
)

// Output is the document written by the listing in JSON mode.
type Output struct {
	Site   string           `json:"site" jsonschema:"description=Base URL of the catalog site."`
	Topics []*catalog.Topic `json:"topics" jsonschema:"description=Listed topics with their series and optionally their episodes."`
}

func writeJson(out io.Writer, site string, topics []*catalog.Topic) error {
	if topics == nil {
		topics = []*catalog.Topic{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(&Output{
		Site:   site,
		Topics: topics,
	})
}
