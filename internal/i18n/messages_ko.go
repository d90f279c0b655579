package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Korean

	// Layout
	message.SetString(lang, "app.title", "핑퐁 관리자")
	message.SetString(lang, "admin.default_name", "관리자")
	message.SetString(lang, "nav.dashboard", "대시보드")
	message.SetString(lang, "nav.users", "사용자 관리")
	message.SetString(lang, "nav.games", "게임 관리")
	message.SetString(lang, "nav.posts", "모집글 관리")
	message.SetString(lang, "nav.logout", "로그아웃")

	// Login
	message.SetString(lang, "login.heading", "관리자 로그인")
	message.SetString(lang, "login.student_id", "학번")
	message.SetString(lang, "login.password", "비밀번호")
	message.SetString(lang, "login.submit", "로그인")
	message.SetString(lang, "login.failed", "로그인에 실패했습니다.")
	message.SetString(lang, "login.unavailable", "서버에 연결할 수 없습니다.")
	message.SetString(lang, "login.not_admin", "관리자 권한이 없습니다. (is_admin 값: %s)")

	// Tables
	message.SetString(lang, "table.no_data", "데이터가 없습니다.")
	message.SetString(lang, "table.load_failed", "데이터 로드 실패")
	message.SetString(lang, "table.no_participants", "참가자가 없습니다.")
	message.SetString(lang, "user.placeholder", "사용자 %s")

	message.SetString(lang, "users.col.id", "ID")
	message.SetString(lang, "users.col.name", "이름")
	message.SetString(lang, "users.col.student_id", "학번")
	message.SetString(lang, "users.col.phone", "전화번호")
	message.SetString(lang, "users.col.score", "점수")
	message.SetString(lang, "users.col.record", "승/패")
	message.SetString(lang, "users.col.created_at", "가입일")
	message.SetString(lang, "users.col.role", "권한")
	message.SetString(lang, "users.col.actions", "관리")
	message.SetString(lang, "users.role.admin", "관리자")
	message.SetString(lang, "users.role.member", "일반")
	message.SetString(lang, "users.name_missing", "이름 없음")
	message.SetString(lang, "users.search_placeholder", "이름 또는 학번 검색")

	message.SetString(lang, "games.col.id", "ID")
	message.SetString(lang, "games.col.winner", "승자")
	message.SetString(lang, "games.col.loser", "패자")
	message.SetString(lang, "games.col.score", "점수")
	message.SetString(lang, "games.col.played_at", "일시")
	message.SetString(lang, "games.col.actions", "관리")
	message.SetString(lang, "games.start_date", "시작일")
	message.SetString(lang, "games.end_date", "종료일")

	message.SetString(lang, "posts.col.id", "ID")
	message.SetString(lang, "posts.col.title", "제목")
	message.SetString(lang, "posts.col.writer", "작성자")
	message.SetString(lang, "posts.col.game_at", "경기 일시")
	message.SetString(lang, "posts.col.place", "장소")
	message.SetString(lang, "posts.col.headcount", "인원")
	message.SetString(lang, "posts.col.created_at", "작성일")
	message.SetString(lang, "posts.col.actions", "관리")
	message.SetString(lang, "posts.search_placeholder", "제목 검색")

	message.SetString(lang, "participants.col.id", "ID")
	message.SetString(lang, "participants.col.name", "이름")
	message.SetString(lang, "participants.col.student_id", "학번")

	// Actions
	message.SetString(lang, "action.edit", "편집")
	message.SetString(lang, "action.delete", "삭제")
	message.SetString(lang, "action.view", "보기")
	message.SetString(lang, "action.save", "저장")
	message.SetString(lang, "action.cancel", "취소")
	message.SetString(lang, "action.confirm", "확인")
	message.SetString(lang, "action.search", "검색")
	message.SetString(lang, "action.filter", "필터")
	message.SetString(lang, "action.close", "닫기")
	message.SetString(lang, "pagination.prev", "이전")
	message.SetString(lang, "pagination.next", "다음")

	// Dashboard
	message.SetString(lang, "dashboard.total_users", "총 사용자")
	message.SetString(lang, "dashboard.new_users", "신규 사용자 (7일)")
	message.SetString(lang, "dashboard.total_games", "총 게임")
	message.SetString(lang, "dashboard.recent_games", "최근 게임 (7일)")
	message.SetString(lang, "dashboard.total_posts", "총 모집글")
	message.SetString(lang, "dashboard.avg_score", "평균 획득 점수")
	message.SetString(lang, "dashboard.top_users", "상위 사용자")
	message.SetString(lang, "dashboard.latest_games", "최근 경기")
	message.SetString(lang, "dashboard.col.rank", "순위")

	// Modals
	message.SetString(lang, "user_modal.title", "사용자 정보")
	message.SetString(lang, "user_modal.status_message", "상태 메시지")
	message.SetString(lang, "user_modal.is_admin", "관리자 권한")
	message.SetString(lang, "post_modal.title", "게시물 정보")
	message.SetString(lang, "post_modal.content", "내용")
	message.SetString(lang, "post_modal.participants", "참가자")

	message.SetString(lang, "confirm.delete_user.title", "사용자 삭제")
	message.SetString(lang, "confirm.delete_user.message", "정말로 이 사용자를 삭제하시겠습니까?")
	message.SetString(lang, "confirm.delete_game.title", "게임 삭제")
	message.SetString(lang, "confirm.delete_game.message", "정말로 이 게임을 삭제하시겠습니까?")
	message.SetString(lang, "confirm.delete_post.title", "게시물 삭제")
	message.SetString(lang, "confirm.delete_post.message", "정말로 이 게시물을 삭제하시겠습니까?")

	// Notices and alerts
	message.SetString(lang, "notice.user_updated", "사용자 정보가 업데이트되었습니다.")
	message.SetString(lang, "notice.user_deleted", "사용자가 삭제되었습니다.")
	message.SetString(lang, "notice.game_deleted", "게임이 삭제되었습니다.")
	message.SetString(lang, "notice.post_deleted", "게시물이 삭제되었습니다.")
	message.SetString(lang, "alert.user_load_failed", "사용자 정보를 불러오는데 실패했습니다.")
	message.SetString(lang, "alert.post_load_failed", "게시물 정보를 불러오는데 실패했습니다.")
	message.SetString(lang, "alert.user_update_failed", "사용자 정보 업데이트에 실패했습니다.")
	message.SetString(lang, "alert.user_delete_failed", "사용자 삭제에 실패했습니다.")
	message.SetString(lang, "alert.game_delete_failed", "게임 삭제에 실패했습니다.")
	message.SetString(lang, "alert.post_delete_failed", "게시물 삭제에 실패했습니다.")
}
