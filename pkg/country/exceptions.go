package country

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/habitfund/contribmap/pkg/errors"
)

// Exception is one exception-table entry: the code and display name to
// use for an exact country-name match, bypassing the standards lookup.
type Exception struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// defaultExceptions is the built-in exception table. Matches are exact
// and case-sensitive, and take precedence over any standards lookup.
// "Global" is a synthetic entry for contributors without a home country.
var defaultExceptions = map[string]Exception{
	"South Korea":   {Code: "kr", Name: "South Korea"},
	"United States": {Code: "us", Name: "United States"},
	"Global":        {Code: "global", Name: "Global"},
	"Russia":        {Code: "ru", Name: "Russia"},
}

// LoadExceptions reads an exception-table overlay from a YAML file
// mapping country names to entries:
//
//	Taiwan:
//	  code: tw
//	  name: Taiwan
func LoadExceptions(path string) (map[string]Exception, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	overlay := make(map[string]Exception)
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return overlay, nil
}
