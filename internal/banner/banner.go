// Package banner renders the startup banner shown on stderr.
package banner

import "fmt"

const art = `
 _    _               _       _ _
| |  | |             | |     | (_)
| |  | | ___  _ __ __| | __ _| |_  __ _ _ __
| |/\| |/ _ \| '__/ _` + "`" + ` |/ _` + "`" + ` | | |/ _` + "`" + ` | '_ \
\  /\  / (_) | | | (_| | (_| | | | (_| | | | |
 \/  \/ \___/|_|  \__,_|\__,_|_|_|\__, |_| |_|
                                   __/ |
                                  |___/
`

// Banner returns the banner text with the version appended.
func Banner(version string) string {
	return fmt.Sprintf("%s  word aligner %s\n\n", art, version)
}
