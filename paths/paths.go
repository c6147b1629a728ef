// This file is part of emu6502.
//
// emu6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emu6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emu6502.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path"
)

// the name of the local resource directory. the user config directory uses
// the same name without the leading dot.
const localResourcePath = ".emu6502"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base path. The subPth is a directory and is
// created if necessary. The file argument is appended to the path without
// any checks.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return path.Join(base, file), nil
}

func getBasePath(subPth string) (string, error) {
	// local resource directory takes priority
	if _, err := os.Stat(localResourcePath); err == nil {
		pth := path.Join(localResourcePath, subPth)
		if err := os.MkdirAll(pth, 0o700); err != nil {
			return "", err
		}
		return pth, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	pth := path.Join(cnf, localResourcePath[1:], subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
