package attrmap

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
)

// legacyKeys are misspellings written by older table generators.
var legacyKeys = map[string]string{
	"uncertainity": "uncertainty",
}

// decode fills out from attrs. Every tagged field of out is required; the
// first one missing is reported as a malformed record.
func decode(field string, attrs dialect.Attributes, out any) error {
	input := make(map[string]string, len(attrs))
	for k, v := range attrs {
		if canonical, ok := legacyKeys[k]; ok {
			if _, dup := attrs[canonical]; dup {
				continue
			}
			k = canonical
		}
		input[k] = v
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         &md,
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		// Only the boolean fields can fail to decode from text.
		return &nuclide.MalformedRecordError{Field: field, Key: "extrapolated", Reason: err.Error()}
	}
	if len(md.Unset) > 0 {
		return &nuclide.MalformedRecordError{Field: field, Key: md.Unset[0], Reason: "missing required key"}
	}
	return nil
}
