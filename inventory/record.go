package inventory

import "slices"

// Record is the certificate request emitted for one standalone node.
// Field order is part of the output format.
type Record struct {
	Name              string   `json:"name"              yaml:"name"`
	AlternateNames    []string `json:"alternateNames"    yaml:"alternateNames"`
	ClientAuthEnabled bool     `json:"clientAuthEnabled" yaml:"clientAuthEnabled"`
	RequestedBy       string   `json:"requestedBy"       yaml:"requestedBy"`
}

// NewRecord returns a record for the node named name whose only alternate
// name is ip.
func NewRecord(name, ip, requestor string) *Record {
	return &Record{
		Name:           name,
		AlternateNames: []string{ip},
		RequestedBy:    requestor,
	}
}

// Merge adds a cluster member to r: member is inserted at [InsertIndex] of
// the current alternate names and ip is appended.
func (r *Record) Merge(member, ip string) {
	at := InsertIndex(len(r.AlternateNames))

	r.AlternateNames = slices.Insert(r.AlternateNames, at, member)
	r.AlternateNames = append(r.AlternateNames, ip)
}
