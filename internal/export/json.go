package export

import (
	"encoding/json"
	"io"
)

// JSONRenderer writes the normalized course list as an indented JSON array.
type JSONRenderer struct{}

func (JSONRenderer) Format() string    { return "json" }
func (JSONRenderer) Extension() string { return ".json" }

func (JSONRenderer) Render(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
