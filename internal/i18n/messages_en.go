package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "app.title", "Ping-Pong Admin")
	message.SetString(lang, "admin.default_name", "Administrator")
	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.users", "Users")
	message.SetString(lang, "nav.games", "Games")
	message.SetString(lang, "nav.posts", "Recruitment posts")
	message.SetString(lang, "nav.logout", "Log out")

	// Login
	message.SetString(lang, "login.heading", "Administrator sign in")
	message.SetString(lang, "login.student_id", "Student ID")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Sign in")
	message.SetString(lang, "login.failed", "Login failed.")
	message.SetString(lang, "login.unavailable", "The server could not be reached.")
	message.SetString(lang, "login.not_admin", "You do not have administrator rights. (is_admin value: %s)")

	// Tables
	message.SetString(lang, "table.no_data", "No data.")
	message.SetString(lang, "table.load_failed", "Failed to load data")
	message.SetString(lang, "table.no_participants", "No participants.")
	message.SetString(lang, "user.placeholder", "User %s")

	message.SetString(lang, "users.col.id", "ID")
	message.SetString(lang, "users.col.name", "Name")
	message.SetString(lang, "users.col.student_id", "Student ID")
	message.SetString(lang, "users.col.phone", "Phone")
	message.SetString(lang, "users.col.score", "Score")
	message.SetString(lang, "users.col.record", "W/L")
	message.SetString(lang, "users.col.created_at", "Joined")
	message.SetString(lang, "users.col.role", "Role")
	message.SetString(lang, "users.col.actions", "Actions")
	message.SetString(lang, "users.role.admin", "Admin")
	message.SetString(lang, "users.role.member", "Member")
	message.SetString(lang, "users.name_missing", "No name")
	message.SetString(lang, "users.search_placeholder", "Search by name or student ID")

	message.SetString(lang, "games.col.id", "ID")
	message.SetString(lang, "games.col.winner", "Winner")
	message.SetString(lang, "games.col.loser", "Loser")
	message.SetString(lang, "games.col.score", "Score")
	message.SetString(lang, "games.col.played_at", "Played at")
	message.SetString(lang, "games.col.actions", "Actions")
	message.SetString(lang, "games.start_date", "From")
	message.SetString(lang, "games.end_date", "To")

	message.SetString(lang, "posts.col.id", "ID")
	message.SetString(lang, "posts.col.title", "Title")
	message.SetString(lang, "posts.col.writer", "Writer")
	message.SetString(lang, "posts.col.game_at", "Game time")
	message.SetString(lang, "posts.col.place", "Place")
	message.SetString(lang, "posts.col.headcount", "Players")
	message.SetString(lang, "posts.col.created_at", "Created")
	message.SetString(lang, "posts.col.actions", "Actions")
	message.SetString(lang, "posts.search_placeholder", "Search by title")

	message.SetString(lang, "participants.col.id", "ID")
	message.SetString(lang, "participants.col.name", "Name")
	message.SetString(lang, "participants.col.student_id", "Student ID")

	// Actions
	message.SetString(lang, "action.edit", "Edit")
	message.SetString(lang, "action.delete", "Delete")
	message.SetString(lang, "action.view", "View")
	message.SetString(lang, "action.save", "Save")
	message.SetString(lang, "action.cancel", "Cancel")
	message.SetString(lang, "action.confirm", "Confirm")
	message.SetString(lang, "action.search", "Search")
	message.SetString(lang, "action.filter", "Filter")
	message.SetString(lang, "action.close", "Close")
	message.SetString(lang, "pagination.prev", "Previous")
	message.SetString(lang, "pagination.next", "Next")

	// Dashboard
	message.SetString(lang, "dashboard.total_users", "Total users")
	message.SetString(lang, "dashboard.new_users", "New users (7 days)")
	message.SetString(lang, "dashboard.total_games", "Total games")
	message.SetString(lang, "dashboard.recent_games", "Recent games (7 days)")
	message.SetString(lang, "dashboard.total_posts", "Total posts")
	message.SetString(lang, "dashboard.avg_score", "Average points won")
	message.SetString(lang, "dashboard.top_users", "Top users")
	message.SetString(lang, "dashboard.latest_games", "Latest games")
	message.SetString(lang, "dashboard.col.rank", "Rank")

	// Modals
	message.SetString(lang, "user_modal.title", "User details")
	message.SetString(lang, "user_modal.status_message", "Status message")
	message.SetString(lang, "user_modal.is_admin", "Administrator")
	message.SetString(lang, "post_modal.title", "Post details")
	message.SetString(lang, "post_modal.content", "Content")
	message.SetString(lang, "post_modal.participants", "Participants")

	message.SetString(lang, "confirm.delete_user.title", "Delete user")
	message.SetString(lang, "confirm.delete_user.message", "Do you really want to delete this user?")
	message.SetString(lang, "confirm.delete_game.title", "Delete game")
	message.SetString(lang, "confirm.delete_game.message", "Do you really want to delete this game?")
	message.SetString(lang, "confirm.delete_post.title", "Delete post")
	message.SetString(lang, "confirm.delete_post.message", "Do you really want to delete this post?")

	// Notices and alerts
	message.SetString(lang, "notice.user_updated", "The user was updated.")
	message.SetString(lang, "notice.user_deleted", "The user was deleted.")
	message.SetString(lang, "notice.game_deleted", "The game was deleted.")
	message.SetString(lang, "notice.post_deleted", "The post was deleted.")
	message.SetString(lang, "alert.user_load_failed", "Failed to load the user.")
	message.SetString(lang, "alert.post_load_failed", "Failed to load the post.")
	message.SetString(lang, "alert.user_update_failed", "Failed to update the user.")
	message.SetString(lang, "alert.user_delete_failed", "Failed to delete the user.")
	message.SetString(lang, "alert.game_delete_failed", "Failed to delete the game.")
	message.SetString(lang, "alert.post_delete_failed", "Failed to delete the post.")
}
