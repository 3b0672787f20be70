package models

// PasswordHash is the stored credential: a per-user random salt and the key
// derived from the password and that salt. Both are base64 on the wire.
type PasswordHash struct {
	Salt []byte `json:"salt"`
	Key  []byte `json:"key"`
}

type User struct {
	// Username is the key of Document.Users and is not repeated in the file.
	Username     string       `json:"-"`
	PasswordHash PasswordHash `json:"password_hash"`
	CreatedAt    Timestamp    `json:"created_at"`
}

// Clone returns a deep copy of u.
func (u *User) Clone() *User {
	c := *u
	c.PasswordHash.Salt = append([]byte(nil), u.PasswordHash.Salt...)
	c.PasswordHash.Key = append([]byte(nil), u.PasswordHash.Key...)
	return &c
}
