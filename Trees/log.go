package Trees

import "github.com/sirupsen/logrus"

// Log receives Debug entries describing the rotations and recolorings done by
// the balanced trees, with the operation in the "op" field. Debug is off by
// default; nothing below it is logged.
var Log = logrus.New()

// tracing reports whether Log records Debug entries, to be checked before
// building fields.
func tracing() bool {
	return Log.IsLevelEnabled(logrus.DebugLevel)
}
