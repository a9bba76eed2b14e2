package storage

// UserStorage is a Store narrowed to one user. It satisfies the key/value
// backends of the compliments and theme packages.
type UserStorage struct {
	store      Store
	telegramID int64
}

// ForUser scopes store to a single user.
func ForUser(store Store, telegramID int64) *UserStorage {
	return &UserStorage{store: store, telegramID: telegramID}
}

func (u *UserStorage) GetItem(key string) (string, bool, error) {
	return u.store.GetItem(u.telegramID, key)
}

func (u *UserStorage) SetItem(key, value string) error {
	return u.store.SetItem(u.telegramID, key, value)
}

func (u *UserStorage) RemoveItem(key string) error {
	return u.store.RemoveItem(u.telegramID, key)
}
