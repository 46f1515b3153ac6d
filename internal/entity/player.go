package entity

type Player struct {
	ID   string `json:"id"`
	Mark string `json:"mark,omitempty"`
	Bot  bool   `json:"bot,omitempty"`
}

func (that *Player) IsBot() bool {
	return that.Bot
}
