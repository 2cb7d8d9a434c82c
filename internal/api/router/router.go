package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SecondHemisphere/portal-actividades/config"
	"github.com/SecondHemisphere/portal-actividades/internal/api/handler"
	"github.com/SecondHemisphere/portal-actividades/internal/api/middleware"
	"github.com/SecondHemisphere/portal-actividades/internal/model"
	"github.com/SecondHemisphere/portal-actividades/pkg/jwt"
	"github.com/SecondHemisphere/portal-actividades/pkg/redis"
)

// maxBodyBytes caps request bodies at 1MB.
const maxBodyBytes = 1 << 20

// Setup builds the Gin engine with every route of the portal.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// Public authentication endpoints, rate limited per IP.
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
			auth.POST("/register/student", h.Auth.RegisterStudent)
			auth.POST("/register/organizer", h.Auth.RegisterOrganizer)
		}

		// Public browsing: the landing page lists activities without a
		// session.
		v1.GET("/activities", h.Activity.ListActivities)
		v1.GET("/activities/search", h.Activity.SearchActivities)
		v1.GET("/activities/calendar", h.Activity.Calendar)
		v1.GET("/activities/:id", h.Activity.GetActivity)
		v1.GET("/faculties", h.Faculty.ListFaculties)

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)
			authorized.PUT("/auth/reset-password/:id", middleware.RoleAuth(model.RoleAdmin), h.Auth.ResetPassword)

			activities := authorized.Group("/activities")
			{
				activities.GET("/mine", middleware.RoleAuth(model.RoleOrganizer, model.RoleAdmin), h.Activity.ListMyActivities)
				activities.POST("", middleware.RoleAuth(model.RoleOrganizer, model.RoleAdmin), h.Activity.CreateActivity)
				activities.PUT("/:id", middleware.RoleAuth(model.RoleOrganizer, model.RoleAdmin), h.Activity.UpdateActivity)
				activities.PUT("/deactivate/:id", middleware.RoleAuth(model.RoleOrganizer, model.RoleAdmin), h.Activity.DeactivateActivity)
				activities.PUT("/activate/:id", middleware.RoleAuth(model.RoleOrganizer, model.RoleAdmin), h.Activity.ActivateActivity)
			}

			categories := authorized.Group("/categories")
			{
				categories.GET("", h.Category.ListCategories)
				categories.GET("/search", h.Category.SearchCategories)
				categories.GET("/:id", h.Category.GetCategory)
				categories.POST("", middleware.RoleAuth(model.RoleAdmin), h.Category.CreateCategory)
				categories.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Category.UpdateCategory)
				categories.PUT("/deactivate/:id", middleware.RoleAuth(model.RoleAdmin), h.Category.DeactivateCategory)
				categories.PUT("/activate/:id", middleware.RoleAuth(model.RoleAdmin), h.Category.ActivateCategory)
			}

			enrollments := authorized.Group("/enrollments")
			{
				enrollments.POST("/enroll", middleware.RoleAuth(model.RoleStudent), h.Enrollment.Enroll)
				enrollments.PUT("/cancel/:id", middleware.RoleAuth(model.RoleStudent), h.Enrollment.CancelEnrollment)
				enrollments.GET("/mine", middleware.RoleAuth(model.RoleStudent), h.Enrollment.ListMyEnrollments)
				enrollments.GET("/mine/calendar", middleware.RoleAuth(model.RoleStudent), h.Enrollment.MyCalendar)

				enrollments.GET("", middleware.RoleAuth(model.RoleAdmin), h.Enrollment.ListEnrollments)
				enrollments.GET("/search", middleware.RoleAuth(model.RoleAdmin), h.Enrollment.SearchEnrollments)
				enrollments.GET("/:id", middleware.RoleAuth(model.RoleAdmin), h.Enrollment.GetEnrollment)
				enrollments.GET("/activity/:id", middleware.RoleAuth(model.RoleOrganizer, model.RoleAdmin), h.Enrollment.ListByActivity)
				enrollments.GET("/student/:id", middleware.RoleAuth(model.RoleAdmin), h.Enrollment.ListByStudent)
				enrollments.GET("/student/:id/calendar", middleware.RoleAuth(model.RoleAdmin), h.Enrollment.StudentCalendar)
				enrollments.POST("", middleware.RoleAuth(model.RoleAdmin), h.Enrollment.CreateEnrollment)
				enrollments.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Enrollment.UpdateEnrollment)
			}

			ratings := authorized.Group("/ratings")
			{
				ratings.POST("", middleware.RoleAuth(model.RoleStudent), h.Rating.CreateRating)
				ratings.GET("/can-review/:activityId", middleware.RoleAuth(model.RoleStudent), h.Rating.CanReview)
				ratings.GET("/mine", middleware.RoleAuth(model.RoleStudent), h.Rating.ListMyRatings)
				ratings.GET("/activity/:id", h.Rating.ListByActivity)
				ratings.GET("/search", middleware.RoleAuth(model.RoleAdmin), h.Rating.SearchRatings)
				ratings.PUT("/:id", middleware.RoleAuth(model.RoleStudent), h.Rating.UpdateRating)
				ratings.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Rating.DeleteRating)
			}

			students := authorized.Group("/students")
			{
				students.GET("/me", middleware.RoleAuth(model.RoleStudent), h.Student.GetMyProfile)
				students.PUT("/me", middleware.RoleAuth(model.RoleStudent), h.Student.UpdateMyProfile)

				students.GET("", middleware.RoleAuth(model.RoleAdmin), h.Student.ListStudents)
				students.GET("/search", middleware.RoleAuth(model.RoleAdmin), h.Student.SearchStudents)
				students.GET("/:id", middleware.RoleAuth(model.RoleAdmin), h.Student.GetStudent)
				students.POST("", middleware.RoleAuth(model.RoleAdmin), h.Student.CreateStudent)
				students.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Student.UpdateStudent)
				students.PUT("/deactivate/:id", middleware.RoleAuth(model.RoleAdmin), h.Student.DeactivateStudent)
				students.PUT("/activate/:id", middleware.RoleAuth(model.RoleAdmin), h.Student.ActivateStudent)
			}

			organizers := authorized.Group("/organizers")
			{
				organizers.GET("/me", middleware.RoleAuth(model.RoleOrganizer), h.Organizer.GetMyProfile)
				organizers.PUT("/me", middleware.RoleAuth(model.RoleOrganizer), h.Organizer.UpdateMyProfile)

				organizers.GET("", h.Organizer.ListOrganizers)
				organizers.GET("/search", middleware.RoleAuth(model.RoleAdmin), h.Organizer.SearchOrganizers)
				organizers.GET("/:id", h.Organizer.GetOrganizer)
				organizers.POST("", middleware.RoleAuth(model.RoleAdmin), h.Organizer.CreateOrganizer)
				organizers.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Organizer.UpdateOrganizer)
				organizers.PUT("/deactivate/:id", middleware.RoleAuth(model.RoleAdmin), h.Organizer.DeactivateOrganizer)
				organizers.PUT("/activate/:id", middleware.RoleAuth(model.RoleAdmin), h.Organizer.ActivateOrganizer)
			}

			users := authorized.Group("/users")
			users.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				users.GET("", h.User.ListUsers)
				users.GET("/search", h.User.SearchUsers)
				users.GET("/:id", h.User.GetUser)
				users.POST("", h.User.CreateUser)
				users.PUT("/:id", h.User.UpdateUser)
				users.PUT("/deactivate/:id", h.User.DeactivateUser)
				users.PUT("/activate/:id", h.User.ActivateUser)
			}

			dashboard := authorized.Group("/dashboard")
			dashboard.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				dashboard.GET("/totals", h.Dashboard.Totals)
				dashboard.GET("/enrollments-last-months", h.Dashboard.EnrollmentsLastMonths)
				dashboard.GET("/activities-by-category", h.Dashboard.ActivitiesByCategory)
				dashboard.GET("/top-ratings", h.Dashboard.TopRatings)
			}

			export := authorized.Group("/export")
			{
				export.GET("/enrollments", middleware.RoleAuth(model.RoleOrganizer, model.RoleAdmin), h.Export.ExportEnrollments)
			}
		}
	}

	return r
}
