// Package inventory turns a flat node inventory into certificate request
// records.
//
// # Input
//
// Each line of an inventory is a candidate entry. After tabs are replaced by
// spaces and surrounding whitespace is trimmed, a line is an entry when it
// has the shape
//
//	<token> <text> <dotted-quad IPv4> <text>
//
// for example
//
//	12 node1 rack-3 10.0.0.1 v1
//
// The node name is the token following the first one, the IP is the first
// dotted quad on the line, and the version is the last token. Lines of any
// other shape are ignored.
//
// # Records
//
// Every standalone node produces one [Record] keyed by its base name. The
// record name is the base name qualified with the store's domain, and its
// alternate names start with the node's own IP.
//
// A node whose name ends in a hyphen and exactly one word character (node1-a,
// node1-b, node1-7) is a cluster member of the node named by the rest
// (node1). Members never get a record of their own; [Store.MergeCluster]
// folds the member name and IP into the parent's alternate names:
//
//	[ip0]                       + node1-a/ip1 -> [node1-a ip0 ip1]
//	[node1-a ip0 ip1]           + node1-b/ip2 -> [node1-a node1-b ip0 ip1 ip2]
//
// The member name goes to [InsertIndex] of the current list and the member IP
// is appended. Downstream consumers rely on this exact order.
//
// Input order matters: a member must follow its parent, otherwise ingest
// fails with [ErrUnknownParent].
//
// # Output
//
// Records render as JSON or YAML with the fields name, alternateNames,
// clientAuthEnabled and requestedBy, in that order. A store renders either
// as a stream of individual documents ([LayoutStream]) or as one document
// keyed by base name ([LayoutAggregate]).
package inventory
