/*
Package server implements msgpack IPC for the wordtrie dictionary.

Clients write msgpack maps to stdin and read msgpack maps from stdout, one
response per request, in order. stderr carries logs only. Right after start
the server writes a readiness message:

	{"status": "ready"}

Every request names an action and carries an ID that is echoed back:

	{"id": "req_001", "action": "complete", "p": "ca", "l": 3}

Autocomplete responses list words in trie order with a 1-based rank and the
word's insertion count:

	{"id": "req_001", "status": "ok", "s": [{"w": "car", "r": 1, "f": 2}, {"w": "cart", "r": 2, "f": 1}], "c": 2, "t": 41}

# Actions

	complete   p = prefix, l = optional limit         -> s, c
	add        p = word                               -> status
	delete     p = word                               -> status
	phonetic   p = word                               -> words, found
	expand     p = sentence                           -> text
	load       path = word list file                  -> c (words added)
	list                                              -> words, c
	stats                                             -> stats
	config     max_limit, max_prefix                  -> status
	health                                            -> status

Failures set status to "error" with a message and a code: 400 invalid input
or unknown action, 404 word or prefix not found, 422 source unavailable,
500 anything else. The t field is the handling time in microseconds.
*/
package server

// Request is a single client message.
type Request struct {
	ID        string `msgpack:"id"`
	Action    string `msgpack:"action"`
	Input     string `msgpack:"p,omitempty"`
	Limit     int    `msgpack:"l,omitempty"`
	Path      string `msgpack:"path,omitempty"`
	MaxLimit  *int   `msgpack:"max_limit,omitempty"`
	MaxPrefix *int   `msgpack:"max_prefix,omitempty"`
}

// Suggestion is a single autocomplete result on the wire.
type Suggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
	Freq int    `msgpack:"f"`
}

// Response answers exactly one Request.
type Response struct {
	ID          string         `msgpack:"id"`
	Status      string         `msgpack:"status"`
	Suggestions []Suggestion   `msgpack:"s,omitempty"`
	Words       []string       `msgpack:"words,omitempty"`
	Found       bool           `msgpack:"found,omitempty"`
	Text        string         `msgpack:"text,omitempty"`
	Count       int            `msgpack:"c"`
	Stats       map[string]int `msgpack:"stats,omitempty"`
	TimeTaken   int64          `msgpack:"t"`
	Error       string         `msgpack:"error,omitempty"`
	Code        int            `msgpack:"code,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
	StatusReady = "ready"
)

const (
	CodeBadRequest        = 400
	CodeNotFound          = 404
	CodeSourceUnavailable = 422
	CodeInternal          = 500
)
