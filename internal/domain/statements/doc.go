// Package statements defines the dialog memory of a conversational agent:
// statements (recorded utterances) and the responses observed after them,
// together with the repository and service contracts operating on them.
package statements
