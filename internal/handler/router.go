package handler

import "github.com/gin-gonic/gin"

// Handlers bundles every endpoint group for route registration.
type Handlers struct {
	Auth      *AuthHandler
	User      *UserHandler
	Chat      *ChatHandler
	Knowledge *KnowledgeHandler
	Timetable *TimetableHandler
	Result    *ResultHandler
	IDCard    *IDCardHandler
}

// RegisterRoutes attaches all application routes to the engine. The
// admin panel and student app share one flat namespace.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.POST("/forgot_password", h.Auth.ForgotPassword)
	r.POST("/forgot_userid", h.Auth.ForgotUserID)

	r.POST("/get_profile", h.User.GetProfile)
	r.POST("/update_profile", h.User.UpdateProfile)

	r.POST("/ask", h.Chat.Ask)
	r.POST("/history", h.Chat.History)

	r.GET("/get_timetable", h.Timetable.List)
	r.POST("/get_result", h.Result.GetResult)

	r.POST("/apply_id", h.IDCard.Apply)

	api := r.Group("/api")
	{
		api.GET("/get_verified_id", h.IDCard.GetVerified)
		api.GET("/get_verified_id_pdf", h.IDCard.GetVerifiedPDF)
		api.GET("/get_all_ids", h.IDCard.ListByEmail)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/get_users", h.User.ListUsers)
		admin.POST("/update_attendance", h.User.UpdateAttendance)
		admin.POST("/delete_user", h.User.DeleteUser)

		admin.POST("/upload_knowledge", h.Knowledge.Upload)
		admin.GET("/get_knowledge", h.Knowledge.List)
		admin.POST("/delete_knowledge", h.Knowledge.Delete)

		admin.POST("/add_timetable", h.Timetable.Add)
		admin.POST("/delete_timetable", h.Timetable.Delete)

		admin.POST("/add_bulk_marks", h.Result.AddBulkMarks)
		admin.POST("/get_result_by_roll", h.Result.GetResultByRoll)
		admin.POST("/update_result", h.Result.UpdateResult)
		admin.POST("/delete_result_entry", h.Result.DeleteResultEntry)
		admin.POST("/delete_all_marks", h.Result.DeleteAllMarks)
		admin.POST("/import_bulk_marks", h.Result.ImportBulkMarks)
		admin.POST("/clear_all_results_database", h.Result.ClearAllResults)
		admin.GET("/export_results_csv", h.Result.ExportResultsCSV)

		admin.GET("/get_pending_id_apps", h.IDCard.ListPending)
		admin.POST("/update_id_status", h.IDCard.UpdateStatus)
		admin.POST("/full_edit_id_app", h.IDCard.FullEdit)
		admin.GET("/get_verified_students", h.IDCard.ListApproved)
	}
}
