package router

import (
	"hotel_manager/constants"
	"hotel_manager/handler"
	"hotel_manager/helper"
	"hotel_manager/middleware"
	"hotel_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	staff := middleware.RequireRole(constants.ROLE_STAFF)
	manager := middleware.RequireRole(constants.ROLE_MANAGER)
	owner := middleware.RequireRole(constants.ROLE_OWNER)
	housekeeping := middleware.RequireRole(constants.ROLE_HOUSEKEEPING)

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", validate.Refresh(), handler.RefreshAccessToken)
	auth.Post("/logout", handler.Logout)

	account := v1.Group("/account", middleware.Protected())
	account.Get("/me", housekeeping, handler.GetProfile)
	account.Post("/change-password", housekeeping, validate.ChangePassword(), handler.ChangePassword)
	account.Get("/", manager, handler.GetAccounts)
	account.Post("/", owner, validate.CreateAccount(), handler.CreateAccount)
	account.Patch("/:accountId/deactivate", owner, validate.GetById("accountId"), handler.DeactivateAccount)

	roomType := v1.Group("/room-type", middleware.Protected())
	roomType.Get("/", staff, handler.GetRoomTypes)
	roomType.Post("/", manager, validate.CreateRoomType(), handler.CreateRoomType)

	room := v1.Group("/room", middleware.Protected())
	room.Get("/", housekeeping, handler.GetRooms)
	room.Get("/board", staff, handler.GetRoomBoard)
	room.Get("/:roomId", housekeeping, validate.GetById("roomId"), handler.GetRoomDetail)
	room.Post("/", manager, validate.CreateRoom(), handler.CreateRoom)
	room.Patch("/:roomId/status", staff, validate.GetById("roomId"), validate.UpdateRoomStatus(), handler.UpdateRoomStatus)

	ratePlan := v1.Group("/rate-plan", middleware.Protected())
	ratePlan.Get("/", staff, handler.GetRatePlans)
	ratePlan.Post("/", manager, validate.CreateRatePlan(), handler.CreateRatePlan)
	ratePlan.Patch("/:ratePlanId/deactivate", manager, validate.GetById("ratePlanId"), handler.DeactivateRatePlan)
	ratePlan.Get("/overrides", staff, handler.GetDateOverrides)
	ratePlan.Post("/overrides", manager, validate.CreateDateOverride(), handler.CreateDateOverride)
	ratePlan.Delete("/overrides/:overrideId", manager, validate.GetById("overrideId"), handler.DeleteDateOverride)

	guest := v1.Group("/guest", middleware.Protected())
	guest.Get("/", staff, handler.GetGuests)
	guest.Get("/lookup", staff, handler.LookupGuestByIdNumber)
	guest.Get("/:guestId", staff, validate.GetById("guestId"), handler.GetGuestDetail)
	guest.Get("/:guestId/history", staff, validate.GetById("guestId"), handler.GetGuestHistory)
	guest.Post("/", manager, validate.CreateGuest(), handler.CreateGuest)
	guest.Put("/:guestId", manager, validate.GetById("guestId"), validate.UpdateGuest(), handler.UpdateGuest)
	guest.Post("/:guestId/id-image", manager, validate.GetById("guestId"), handler.UploadGuestIdImage)

	booking := v1.Group("/booking", middleware.Protected())
	booking.Get("/", staff, handler.GetBookings)
	booking.Get("/today", staff, handler.GetTodayBookings)
	booking.Get("/calendar", staff, handler.GetBookingCalendar)
	booking.Get("/quote", staff, handler.QuoteBooking)
	booking.Get("/:bookingId", staff, validate.GetById("bookingId"), handler.GetBookingDetail)
	booking.Post("/", staff, validate.CreateBooking(), handler.CreateBooking)
	booking.Put("/:bookingId", staff, validate.GetById("bookingId"), validate.UpdateBooking(), handler.UpdateBooking)
	booking.Post("/:bookingId/check-in", staff, validate.GetById("bookingId"), validate.CheckIn(), handler.CheckInBooking)
	booking.Post("/:bookingId/check-out", staff, validate.GetById("bookingId"), validate.CheckOut(), handler.CheckOutBooking)
	booking.Patch("/:bookingId/status", staff, validate.GetById("bookingId"), validate.UpdateBookingStatus(), handler.UpdateBookingStatus)
	booking.Get("/:bookingId/folio", staff, validate.GetById("bookingId"), handler.GetBookingFolio)

	payment := v1.Group("/payment", middleware.Protected())
	payment.Get("/", staff, handler.GetPayments)
	payment.Get("/:paymentId", staff, validate.GetById("paymentId"), handler.GetPaymentDetail)
	payment.Post("/deposit", staff, validate.RecordDeposit(), handler.RecordDeposit)
	payment.Post("/", staff, validate.CreatePayment(), handler.CreatePayment)
	payment.Patch("/:paymentId/complete", staff, validate.GetById("paymentId"), handler.CompletePayment)

	folio := v1.Group("/folio", middleware.Protected())
	folio.Post("/", staff, validate.CreateFolioItem(), handler.CreateFolioItem)
	folio.Put("/:itemId", staff, validate.GetById("itemId"), validate.UpdateFolioItem(), handler.UpdateFolioItem)
	folio.Post("/:itemId/void", manager, validate.GetById("itemId"), validate.VoidFolioItem(), handler.VoidFolioItem)

	minibar := v1.Group("/minibar", middleware.Protected())
	minibar.Get("/items", staff, handler.GetMinibarItems)
	minibar.Post("/items", manager, validate.CreateMinibarItem(), handler.CreateMinibarItem)
	minibar.Post("/sales", staff, validate.CreateMinibarSale(), handler.RecordMinibarSale)

	finance := v1.Group("/finance", middleware.Protected())
	finance.Get("/categories", staff, handler.GetFinancialCategories)
	finance.Post("/categories", manager, validate.CreateFinancialCategory(), handler.CreateFinancialCategory)
	finance.Get("/entries", staff, handler.GetFinancialEntries)
	finance.Post("/entries", manager, validate.CreateFinancialEntry(), handler.CreateFinancialEntry)
	finance.Get("/summary/daily", manager, handler.GetDailyFinanceSummary)
	finance.Get("/summary/monthly", manager, handler.GetMonthlyFinanceSummary)

	audit := v1.Group("/night-audit", middleware.Protected())
	audit.Get("/", manager, handler.GetNightAudits)
	audit.Get("/detail", manager, handler.GetNightAudit)
	audit.Post("/compute", manager, handler.ComputeNightAudit)
	audit.Post("/close", manager, handler.CloseNightAudit)

	hk := v1.Group("/housekeeping", middleware.Protected())
	hk.Get("/", staff, handler.GetHousekeepingTasks)
	hk.Get("/my-tasks", housekeeping, handler.GetMyHousekeepingTasks)
	hk.Post("/", staff, validate.CreateHousekeepingTask(), handler.CreateHousekeepingTask)
	hk.Patch("/:taskId/assign", staff, validate.GetById("taskId"), validate.Assign(), handler.AssignHousekeepingTask)
	hk.Patch("/:taskId/start", housekeeping, validate.GetById("taskId"), handler.StartHousekeepingTask)
	hk.Patch("/:taskId/complete", housekeeping, validate.GetById("taskId"), handler.CompleteHousekeepingTask)
	hk.Patch("/:taskId/verify", staff, validate.GetById("taskId"), handler.VerifyHousekeepingTask)

	maintenance := v1.Group("/maintenance", middleware.Protected())
	maintenance.Get("/", housekeeping, handler.GetMaintenanceRequests)
	maintenance.Post("/", housekeeping, validate.CreateMaintenance(), handler.CreateMaintenanceRequest)
	maintenance.Patch("/:requestId/assign", manager, validate.GetById("requestId"), validate.Assign(), handler.AssignMaintenanceRequest)
	maintenance.Patch("/:requestId/start", housekeeping, validate.GetById("requestId"), handler.StartMaintenanceRequest)
	maintenance.Patch("/:requestId/hold", staff, validate.GetById("requestId"), validate.Reason(), handler.HoldMaintenanceRequest)
	maintenance.Patch("/:requestId/resume", staff, validate.GetById("requestId"), handler.ResumeMaintenanceRequest)
	maintenance.Patch("/:requestId/complete", staff, validate.GetById("requestId"), validate.CompleteMaintenance(), handler.CompleteMaintenanceRequest)
	maintenance.Patch("/:requestId/cancel", manager, validate.GetById("requestId"), validate.Reason(), handler.CancelMaintenanceRequest)

	lostFound := v1.Group("/lost-found", middleware.Protected())
	lostFound.Get("/", staff, handler.GetLostAndFound)
	lostFound.Post("/", housekeeping, validate.CreateLostAndFound(), handler.CreateLostAndFound)
	lostFound.Patch("/:itemId/return", staff, validate.GetById("itemId"), handler.ReturnLostAndFound)

	message := v1.Group("/message", middleware.Protected())
	message.Get("/templates", staff, handler.GetMessageTemplates)
	message.Get("/", staff, handler.GetGuestMessages)
	message.Post("/send", staff, validate.SendGuestMessage(), handler.SendGuestMessage)
	message.Post("/reminders/check-in", manager, handler.RunCheckinReminders)
	message.Post("/reminders/check-out", manager, handler.RunCheckoutReminders)

	notification := v1.Group("/notification", middleware.Protected())
	notification.Get("/", housekeeping, handler.GetMyNotifications)
	notification.Patch("/:notificationId/read", housekeeping, validate.GetById("notificationId"), handler.MarkNotificationRead)
	notification.Post("/device-token", housekeeping, handler.RegisterDeviceToken)

	dashboard := v1.Group("/dashboard", middleware.Protected())
	dashboard.Get("/", manager, handler.GetDashboard)

	admin := v1.Group("/admin", middleware.Protected())
	admin.Get("/access-logs", manager, handler.GetSensitiveAccessLogs)
	admin.Post("/retention/run", manager, handler.RunRetention)

	media := v1.Group("/media", middleware.Protected())
	media.Post("/signature", staff, handler.GenerateUploadSignature)
}

// WithCloudinary gắn client Cloudinary vào context cho các route upload
func WithCloudinary(app *fiber.App) {
	cld := helper.InitCloudinary()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("cld", cld)
		return c.Next()
	})
}
