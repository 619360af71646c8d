package domain

// BroadcastChannel fans run log lines out to any number of subscribers.
// A nil message signals the end of the stream.
type BroadcastChannel struct {
	Clients map[chan *[]byte]bool

	Broadcast chan []byte

	Register chan chan *[]byte

	Unregister chan chan *[]byte

	// Close is closed (not sent to) by the owner to terminate the stream.
	Close chan struct{}
}

func NewBroadcastChannel() *BroadcastChannel {
	return &BroadcastChannel{
		Broadcast:  make(chan []byte),
		Register:   make(chan chan *[]byte),
		Unregister: make(chan chan *[]byte),
		Close:      make(chan struct{}),
		Clients:    make(map[chan *[]byte]bool),
	}
}

func (h *BroadcastChannel) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			delete(h.Clients, client)
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client <- &message:
				default:
					// a subscriber that stopped draining must not stall the
					// stream for everyone else
					delete(h.Clients, client)
					close(client)
				}
			}
		case <-h.Close:
			for client := range h.Clients {
				select {
				case client <- nil:
				default:
					// full buffer, the closed channel reads as nil anyway
				}
				delete(h.Clients, client)
				close(client)
			}
			return
		}
	}
}
