package cove

import "github.com/tidwall/gjson"

// JSONDoc returns a Reader over a JSON document. Lookup names are gjson
// paths, so nested keys like "server.port" resolve into the document; any
// resolved value reads back in its string form. Missing paths and JSON
// null both read as absent.
func JSONDoc(doc string) Reader {
	parsed := gjson.Parse(doc)
	return ReaderFunc(func(name string) Value[Raw] {
		result := parsed.Get(name)
		if !result.Exists() || result.Type == gjson.Null {
			return Value[Raw]{Name: name}
		}
		s := result.String()
		return Value[Raw]{Val: &s, Name: name}
	})
}
