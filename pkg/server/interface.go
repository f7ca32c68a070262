/*
Package server implements msgpack IPC for anagram lookup services.

The server package provides a minimal interface for anagram queries using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports anagram queries and index inspection ops.
Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured messages via stdin and receive responses through stdout.
Each message contains an ID field and other fields based on the operation type.

Anagram queries use mainly this structure:

	{"id": "req_001", "q": "listen", "l": 50}

The server responds with the indexed anagrams of the query, in wordlist order:

	{"id": "req_001", "a": ["silent", "enlist", "tinsel"], "c": 3, "t": 12}

Index inspection enables runtime introspection of the loaded wordlist:

	{"id": "ix_001", "action": "info"}
	{"id": "ix_002", "action": "groups", "min_size": 3}

Response structures include status information and error details when an op fails.

# Message Types

QueryRequest and QueryResponse handle the main anagram lookup.
Request includes a query word and optional limit for result count.
Responses contain the matching words in wordlist order, a count, and timing data in microseconds.

IndexRequest and IndexResponse cover index inspection operations.
Supported actions include: getting index counters, and enumerating anagram groups in signature order.

QueryError reports rejected queries (empty, oversized) with an HTTP-style code.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing latency in most cases.
*/
package server

// QueryRequest - minimal anagram query
type QueryRequest struct {
	ID    string `msgpack:"id"`
	Query string `msgpack:"q"`
	Limit int    `msgpack:"l,omitempty"`
}

// QueryResponse - anagram query response
type QueryResponse struct {
	ID        string   `msgpack:"id"`
	Anagrams  []string `msgpack:"a"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// INDEX MESSAGES - inspection ops (all tuning via TOML)

// IndexRequest - index inspection request
type IndexRequest struct {
	ID      string `msgpack:"id"`
	Action  string `msgpack:"action"`             // "info", "groups"
	MinSize *int   `msgpack:"min_size,omitempty"` // for "groups"
}

// GroupEntry - one anagram group in a groups response
type GroupEntry struct {
	Signature string   `msgpack:"sig"`
	Words     []string `msgpack:"words"`
}

// IndexResponse - index operation response
type IndexResponse struct {
	ID          string       `msgpack:"id"`
	Status      string       `msgpack:"status"`
	Error       string       `msgpack:"error,omitempty"`
	Words       int          `msgpack:"words,omitempty"`
	Buckets     int          `msgpack:"buckets,omitempty"`
	MaxBucket   int          `msgpack:"max_bucket,omitempty"`
	AnagramSets int          `msgpack:"anagram_sets,omitempty"`
	Groups      []GroupEntry `msgpack:"groups,omitempty"`
	Count       int          `msgpack:"count,omitempty"`
}

// QueryError holds basic error information for rejected queries
type QueryError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
