package domain

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Entities accept bodies without a field whitelist. Fields outside the typed
// schema land in an Extra map that is stored inline in the document and
// written back out next to the known fields.

// unmarshalWithExtra decodes data into known and returns every top-level
// key the struct does not name. Keys are compared case-insensitively, the
// same way encoding/json matches them.
func unmarshalWithExtra(data []byte, known interface{}) (bson.M, error) {
	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}

	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}

	names := jsonFieldNames(reflect.TypeOf(known).Elem())
	for key := range all {
		for _, name := range names {
			if strings.EqualFold(key, name) {
				delete(all, key)
				break
			}
		}
	}

	if len(all) == 0 {
		return nil, nil
	}
	return bson.M(all), nil
}

// marshalWithExtra encodes known and appends the extra fields to the
// resulting object.
func marshalWithExtra(known interface{}, extra bson.M) ([]byte, error) {
	data, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	more, err := json.Marshal(map[string]interface{}(extra))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	if len(data) > 2 {
		buf.WriteByte(',')
	}
	buf.Write(more[1:])
	return buf.Bytes(), nil
}

// mergeExtra replaces *dst with a new map holding dst overlaid by src. The
// original map is never written, so copies of the entity stay untouched.
func mergeExtra(dst *bson.M, src bson.M) {
	if len(src) == 0 {
		return
	}
	merged := make(bson.M, len(*dst)+len(src))
	for k, v := range *dst {
		merged[k] = v
	}
	for k, v := range src {
		merged[k] = v
	}
	*dst = merged
}

func jsonFieldNames(t reflect.Type) []string {
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = t.Field(i).Name
		}
		names = append(names, name)
	}
	return names
}
