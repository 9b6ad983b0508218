package motif

import "errors"

var (
	errMalformedJaspar = errors.New("detected malformed JASPAR format")
	errHocomocoPWM      = errors.New("yamscan cannot read HOCOMOCO PWMs, only HOCOMOCO PCMs")
)
