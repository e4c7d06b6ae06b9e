package operator

import "errors"

var errNoJSONObject = errors.New("no JSON object found in LLM output")
