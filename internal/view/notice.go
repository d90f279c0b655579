package view

const (
	NOTICE_USER_UPDATED = "user_updated"
	NOTICE_USER_DELETED = "user_deleted"
	NOTICE_GAME_DELETED = "game_deleted"
	NOTICE_POST_DELETED = "post_deleted"

	ALERT_USER_LOAD_FAILED   = "user_load_failed"
	ALERT_POST_LOAD_FAILED   = "post_load_failed"
	ALERT_USER_UPDATE_FAILED = "user_update_failed"
	ALERT_USER_DELETE_FAILED = "user_delete_failed"
	ALERT_GAME_DELETE_FAILED = "game_delete_failed"
	ALERT_POST_DELETE_FAILED = "post_delete_failed"
)

var notices = map[string]bool{
	NOTICE_USER_UPDATED: true,
	NOTICE_USER_DELETED: true,
	NOTICE_GAME_DELETED: true,
	NOTICE_POST_DELETED: true,
}

var alerts = map[string]bool{
	ALERT_USER_LOAD_FAILED:   true,
	ALERT_POST_LOAD_FAILED:   true,
	ALERT_USER_UPDATE_FAILED: true,
	ALERT_USER_DELETE_FAILED: true,
	ALERT_GAME_DELETE_FAILED: true,
	ALERT_POST_DELETE_FAILED: true,
}

// Notice returns the localized success notice for key, "" for unknown keys.
func Notice(loc Localizer, key string) string {
	if !notices[key] {
		return ""
	}
	return T(loc, "notice."+key)
}

// Alert returns the localized failure alert for key, "" for unknown keys.
func Alert(loc Localizer, key string) string {
	if !alerts[key] {
		return ""
	}
	return T(loc, "alert."+key)
}
