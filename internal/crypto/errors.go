package crypto

import "errors"

// ErrDecryption is returned for any payload that cannot be opened.
var ErrDecryption = errors.New("cannot decrypt payload")
