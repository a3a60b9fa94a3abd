package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"
	"testing"
)

func sampleRows() []Row {
	return []Row{
		{
			Name:         "Algorithms",
			Teacher:      "Prof. Zhang",
			Location:     "A-301",
			StartWeek:    1,
			EndWeek:      16,
			DayOfWeek:    1,
			WeekdayLabel: "Monday",
			StartTime:    "08:00",
			EndTime:      "09:40",
			CourseType:   "normal course",
			Hours:        1.7,
		},
		{
			Name:         "chem lab",
			Teacher:      "Dr. Li",
			Location:     "Lab B-2",
			StartWeek:    2,
			EndWeek:      10,
			DayOfWeek:    4,
			WeekdayLabel: "Thursday",
			StartTime:    "14:00",
			EndTime:      "15:40",
			CourseType:   "lab",
			Hours:        1.7,
		},
	}
}

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()
	for _, format := range []string{"csv", "json"} {
		renderer, err := r.For(format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if renderer.Format() != format {
			t.Fatalf("renderer tag mismatch: %q", renderer.Format())
		}
		if !strings.HasPrefix(renderer.Extension(), ".") {
			t.Fatalf("%s: extension must include the dot, got %q", format, renderer.Extension())
		}
	}
	if _, err := r.For("xlsx"); err == nil {
		t.Fatal("expected error for an unregistered format")
	}
}

func TestCSVRender(t *testing.T) {
	var buf bytes.Buffer
	if err := (CSVRenderer{}).Render(&buf, sampleRows()); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}
	if records[0][0] != "name" || records[0][len(records[0])-1] != "hours" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][0] != "Algorithms" || records[1][5] != "Monday" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	if records[2][len(records[2])-1] != "1.7" {
		t.Fatalf("hours must render with one decimal, got %q", records[2][len(records[2])-1])
	}
}

func TestJSONRender(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONRenderer{}).Render(&buf, sampleRows()); err != nil {
		t.Fatal(err)
	}

	var decoded []Row
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 || decoded[1].CourseType != "lab" {
		t.Fatalf("unexpected decoded rows: %+v", decoded)
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(tagRenderer{tag: "csv"})
	renderer, err := r.For("csv")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := renderer.(tagRenderer); !ok {
		t.Fatal("Register must replace the renderer for an existing tag")
	}
}

type tagRenderer struct{ tag string }

func (r tagRenderer) Format() string              { return r.tag }
func (tagRenderer) Extension() string             { return ".txt" }
func (tagRenderer) Render(io.Writer, []Row) error { return nil }
