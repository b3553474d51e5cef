package errors

import (
	"errors"

	"github.com/cloudcopper/dd/lib"
)

const ErrUnknownFormat = lib.Error("unknown output format")
const ErrNilConfig = lib.Error("nil config")

var Is = errors.Is
