package core

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResult is returned by both Register and Login: registration issues a
// token immediately so the caller is logged in without a second round trip.
type AuthResult struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type TodoRecord struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
	UserID      uint64 `json:"userId"`
}

// TodoPatch carries a partial update. Nil fields are left untouched.
type TodoPatch struct {
	Title       *string
	IsCompleted *bool
}
