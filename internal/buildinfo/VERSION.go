// Copyright 2026 The geoconv Authors. All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package buildinfo

const (
	// AppName is the friendly name of the app.
	AppName = "geoconv"
	// Version is the app's SemVer.
	Version = "0.4.0"
)
