// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// encoding types
const (
	EncYaml = "yaml"
	EncJson = "json"
	EncGob  = "gob"
)

// Encoder defines encoders; e.g. yaml, json or gob
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. yaml, json or gob
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	switch enctype {
	case EncJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc
	case EncGob:
		return gob.NewEncoder(w)
	}
	return yaml.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	switch enctype {
	case EncJson:
		return json.NewDecoder(r)
	case EncGob:
		return gob.NewDecoder(r)
	}
	return yaml.NewDecoder(r)
}

// ResultsPath returns the path of the results file; e.g. /tmp/gobeam/cantilever.res.yaml
func ResultsPath(dirout, fnkey, enctype string) string {
	return filepath.Join(dirout, io.Sf("%s.res.%s", fnkey, enctype))
}

// Save saves results to a file in dirout
//  Output:
//   fn -- complete filename
func (o *Results) Save(dirout, fnkey, enctype string) (fn string, err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode results
	err = enc.Encode(o)
	if err != nil {
		return "", chk.Err("cannot encode results\n%v", err)
	}
	if c, ok := enc.(goio.Closer); ok {
		err = c.Close()
		if err != nil {
			return "", chk.Err("cannot finalise encoding of results\n%v", err)
		}
	}

	// save file
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("cannot create directory %q\n%v", dirout, err)
	}
	fn = ResultsPath(dirout, fnkey, enctype)
	err = os.WriteFile(fn, buf.Bytes(), 0644)
	if err != nil {
		return "", chk.Err("cannot save results file %q\n%v", fn, err)
	}
	return
}

// ReadResults reads results back
func ReadResults(dirout, fnkey, enctype string) (o *Results, err error) {

	// open file
	fn := ResultsPath(dirout, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open results file %q\n%v", fn, err)
	}
	defer fil.Close()

	// decode results
	o = new(Results)
	err = GetDecoder(fil, enctype).Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode results file %q\n%v", fn, err)
	}
	return
}
