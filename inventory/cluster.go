package inventory

import "regexp"

var clusterPattern = regexp.MustCompile(`^(.*)-\w$`)

// IsCluster reports whether name names a cluster member.
func IsCluster(name string) bool {
	return clusterPattern.MatchString(name)
}

// ParentName returns the name of the node a cluster member belongs to.
func ParentName(name string) (string, bool) {
	m := clusterPattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// InsertIndex returns the position at which the next cluster member name is
// inserted into an alternate-name list of length n.
//
// Member names collect at the front of the list in arrival order while IPs
// collect at the back, so for every n reachable through merges the result is
// the index just past the last member name.
func InsertIndex(n int) int {
	if n <= 1 {
		return 0
	}

	return (n - 1) / 2
}
