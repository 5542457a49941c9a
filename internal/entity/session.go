package entity

// Session - the server address and the identifier of the game being played on it.
// It is created once, when the game is created, and passed to every call addressing that game.
type Session struct {
	ServerURL string
	ID        string
}

func NewSession(serverURL, id string) *Session {
	return &Session{
		ServerURL: serverURL,
		ID:        id,
	}
}
