package courseRoutes

import (
	courseControllers "rbtech/controllers/course"
	"rbtech/middleware"
	courseValidators "rbtech/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course listing, detail and enrollment routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course listing and details (public published courses)
	courseGroup.Get("/list", courseValidators.CourseList(), courseControllers.GetAllCourses)
	courseGroup.Get("/:id", courseValidators.GetCourseDetail(), courseControllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, courseValidators.EnrollCourse(), courseControllers.EnrollInCourse)
	courseGroup.Get("/:id/enrollment", middleware.JWTMiddleware, courseValidators.GetCourseDetail(), courseControllers.GetEnrollmentStatus)

	// User enrollments
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, courseValidators.EnrollmentList(), courseControllers.GetEnrollments)
}
