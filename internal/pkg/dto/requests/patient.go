package requests

import (
	"meditrack-client/internal/pkg/constvars"
	"strconv"
)

// PatientFilter and PatientQueryOptions become query parameters of the
// patient listing; options take precedence on key collision.
type (
	PatientFilter       map[string]string
	PatientQueryOptions map[string]string
)

func Pagination(page, limit int) PatientQueryOptions {
	options := PatientQueryOptions{}
	if page > 0 {
		options[constvars.QueryParamPage] = strconv.Itoa(page)
	}
	if limit > 0 {
		options[constvars.QueryParamLimit] = strconv.Itoa(limit)
	}
	return options
}
