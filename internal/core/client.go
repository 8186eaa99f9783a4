package core

// Client is one attached connection as the registry sees it: a
// process-unique id plus the handle to its outbound queue. Values are
// cheap references and safe to share across goroutines; all
// membership state lives in the Registry.
type Client struct {
	ID       int64
	Outbound *Queue
}

// NewClient constructs a client with a fresh outbound queue.
func NewClient(id int64) *Client {
	return &Client{
		ID:       id,
		Outbound: NewQueue(),
	}
}
