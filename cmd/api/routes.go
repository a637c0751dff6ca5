package main

import (
	"travel-planner/internal/handler"
	"travel-planner/internal/model"
	"travel-planner/internal/security"

	"github.com/go-chi/chi/v5"
)

func setupUserRoutes(r chi.Router, auth *security.Authorizer, a *handler.AuthenticationHandler, h *handler.UserHandler) {
	r.Route("/v1/user", func(r chi.Router) {
		r.Post("/sign-up", h.SignUp)
		r.Post("/sign-in", a.SignIn)
		r.Post("/logout", a.Logout)
		r.Post("/new-access-token", a.NewAccessToken)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireScopes(model.ScopeUser))
			// неактивный пользователь должен иметь возможность вернуть аккаунт
			r.Patch("/reactivate", h.Reactivate)

			r.Group(func(r chi.Router) {
				r.Use(security.RequireActive)
				r.Patch("/update-name", h.UpdateName)
				r.Patch("/update-password", h.UpdatePassword)
				r.Patch("/update-email", h.UpdateEmail)
				r.Patch("/update-phone-number", h.UpdatePhoneNumber)
				r.Patch("/update-date-of-birth", h.UpdateDateOfBirth)
				r.Patch("/update-profile-picture", h.UpdateProfilePicture)
				r.Delete("/delete-profile-picture", h.DeleteProfilePicture)
				r.Get("/profile", h.Profile)
				r.Get("/profile-image", h.ProfileImage)
				r.Patch("/deactivate", h.Deactivate)

				r.Post("/trips/{trip_id}/enroll", h.JoinTrip)
				r.Delete("/trips/{trip_id}/enroll", h.LeaveTrip)
			})
		})
	})
}

func setupPlannerRoutes(r chi.Router, auth *security.Authorizer, h *handler.PlannerHandler) {
	r.Route("/v1/planner", func(r chi.Router) {
		r.Use(auth.RequireScopes(model.ScopePlanner), security.RequireActive)

		r.Post("/create-trip", h.CreateTrip)
		r.Post("/create-destination", h.CreateDestination)
		r.Post("/create-activity", h.CreateActivity)
		r.Delete("/delete-trip/{trip_id}", h.DeleteTrip)

		r.Get("/trips", h.ListTrips)
		r.Get("/destination", h.ListDestinations)
		r.Get("/activity", h.ListActivities)

		r.Get("/all-users-enlisted-in-trip", h.ParticipantsOfTrip)
		r.Get("/trips-with-participant-count", h.TripsWithParticipantsOver)
		r.Get("/destinations-by-min-activities", h.DestinationsWithActivitiesOver)
		r.Get("/get-users-by-date-of-birth", h.UsersByDateOfBirth)
		r.Get("/get-user-activities", h.ActivitiesOfUser)
		r.Get("/find-trips-by-user-birth-date", h.TripsWithParticipantsBornBefore)
		r.Get("/get-activities_by_destination", h.ActivitiesByDestination)
		r.Get("/get-activities_by_trip", h.ActivitiesByTrip)
		r.Get("/get-destinations-where-activities-start-after", h.DestinationsWithActivitiesStartingAfter)
		r.Get("/activities-in-specified-interval", h.ActivitiesInInterval)
		r.Get("/total-amount-per-destination", h.TotalAmountForDestination)
		r.Get("/most-expensive-activity-per-destination", h.MostExpensiveActivities)
		r.Get("/get-users-in-trips-with-expensive-activities", h.UsersInTripsWithActivitiesPricedOver)
		r.Get("/most-expensive-trips", h.MostExpensiveTrips)
		r.Get("/get-trips-by-popularity", h.TripsByPopularity)
		r.Get("/destination-with-most-activities", h.DestinationsWithMostActivities)
		r.Get("/average-activity-price-for-each-destination", h.AverageActivityPricePerDestination)
	})
}

func setupAdminRoutes(r chi.Router, auth *security.Authorizer, h *handler.AdminHandler) {
	r.Route("/v1/admin", func(r chi.Router) {
		r.Use(auth.RequireScopes(model.ScopeAdmin), security.RequireActive)

		r.Delete("/remove/{user_id}", h.RemoveUser)
		r.Put("/update/{user_id}", h.UpdateUserStatus)
		r.Put("/scopes/{user_id}", h.UpdateScopes)
		r.Get("/all-users", h.ListUsers)
	})
}
