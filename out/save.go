// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"path/filepath"

	"github.com/cpmech/gobeam/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SaveResults saves results to <dirout>/<fnkey>.res.<enc>
//  enc -- "yaml", "json" or "gob"
func SaveResults(dirout, fnkey, enc string, res *fem.Results) (fn string, err error) {
	switch enc {
	case fem.EncYaml, fem.EncJson, fem.EncGob:
	default:
		return "", chk.Err("encoding type %q is not available", enc)
	}
	fn, err = res.Save(dirout, fnkey, enc)
	if err != nil {
		return
	}
	io.Pfgreen("file <%s> written\n", fn)
	return
}

// SaveHtml renders the HTML charts and saves them to <dirout>/<fnkey>.html
func SaveHtml(dirout, fnkey string, res *fem.Results) (fn string, err error) {
	var buf bytes.Buffer
	err = RenderHtml(&buf, fnkey, res)
	if err != nil {
		return "", chk.Err("cannot render charts\n%v", err)
	}
	fn = fnkey + ".html"
	io.WriteFileD(dirout, fn, &buf)
	return filepath.Join(dirout, fn), nil
}
