package domain

import "strings"

// tlpdbSignatures are lowercase fragments tlmgr prints when the remote
// package database cannot be fetched from the active mirror.
var tlpdbSignatures = []string{
	"texlive.tlpdb",
	"could not get texlive.tlpdb",
}

// IsTLPDBError reports whether a failure detail points at the mirror rather than the package.
func IsTLPDBError(detail string) bool {
	lowered := strings.ToLower(detail)
	for _, sig := range tlpdbSignatures {
		if strings.Contains(lowered, sig) {
			return true
		}
	}
	return false
}
