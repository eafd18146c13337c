// Copyright ©2019 The Gonum Authors. All rights reserved.
// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatcmp

import (
	"runtime/debug"
	"strings"
)

const root = "github.com/LynnColeArt/floatcmp"

// Version returns the module version of floatcmp linked into the running
// binary and its checksum. Both are empty when build information is
// unavailable or when floatcmp is the main module.
//
// The exact version format returned by Version may change in future.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, m := range b.Deps {
		if m.Path == root {
			return moduleVersion(m)
		}
	}
	return "", ""
}

// moduleVersion renders m as "version=>target", where target is the
// replacement path and version, whichever are set. A replace with
// neither is marked with a trailing "*".
func moduleVersion(m *debug.Module) (version, sum string) {
	r := m.Replace
	if r == nil {
		return m.Version, m.Sum
	}
	if r.Path == "" && r.Version == "" {
		return m.Version + "*", m.Sum + "*"
	}
	target := strings.TrimSpace(r.Path + " " + r.Version)
	return m.Version + "=>" + target, r.Sum
}
