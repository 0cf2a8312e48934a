package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/auth"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/database"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/handlers"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/middleware"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/payments"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/utils"
)

func SetupRouter(client *mongo.Client, dbName string, manager *auth.Manager, gateway payments.Gateway, mailer *utils.Mailer) *mux.Router {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	users := database.NewUserStore(client, dbName)
	verify := middleware.VerifyToken(manager)
	adminOnly := middleware.AdminOnly(users)
	instructorOnly := middleware.InstructorOnly(users)

	tokenHandler := handlers.NewTokenHandler(manager)
	userHandler := handlers.NewUserHandler(client, dbName)
	classHandler := handlers.NewClassHandler(client, dbName)
	selectionHandler := handlers.NewSelectionHandler(client, dbName)
	paymentHandler := handlers.NewPaymentHandler(client, dbName, gateway, mailer)

	router.HandleFunc("/jwt", tokenHandler.IssueToken).Methods("POST")

	router.Handle("/users", verify(adminOnly(http.HandlerFunc(userHandler.GetUsers)))).Methods("GET")
	router.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	router.Handle("/users/admin/{id}", verify(adminOnly(http.HandlerFunc(userHandler.PromoteAdmin)))).Methods("PATCH")
	router.Handle("/users/admin/{email}", verify(http.HandlerFunc(userHandler.IsAdmin))).Methods("GET")
	router.Handle("/users/instructor/{id}", verify(adminOnly(http.HandlerFunc(userHandler.PromoteInstructor)))).Methods("PATCH")
	router.Handle("/users/instructor/{email}", verify(http.HandlerFunc(userHandler.IsInstructor))).Methods("GET")

	router.HandleFunc("/classes", classHandler.GetClasses).Methods("GET")
	router.HandleFunc("/popular-classes", classHandler.GetPopularClasses).Methods("GET")
	router.HandleFunc("/popular-instructors", classHandler.GetPopularInstructors).Methods("GET")
	router.HandleFunc("/my-classes/{email}", classHandler.GetClassesByInstructor).Methods("GET")
	router.Handle("/classes", verify(instructorOnly(http.HandlerFunc(classHandler.CreateClass)))).Methods("POST")
	router.Handle("/classes/{id}", verify(adminOnly(http.HandlerFunc(classHandler.ApproveClass)))).Methods("PATCH")
	router.Handle("/classes/{id}/deny", verify(adminOnly(http.HandlerFunc(classHandler.DenyClass)))).Methods("PATCH")
	router.Handle("/feedback/{id}", verify(adminOnly(http.HandlerFunc(classHandler.SetFeedback)))).Methods("PATCH")

	router.HandleFunc("/selected-classes", selectionHandler.CreateSelection).Methods("POST")
	router.HandleFunc("/selected-classes/{email}", selectionHandler.GetSelections).Methods("GET")
	router.Handle("/selected-classes/{id}", verify(http.HandlerFunc(selectionHandler.DeleteSelection))).Methods("DELETE")

	router.Handle("/create-payment-intent", verify(http.HandlerFunc(paymentHandler.CreatePaymentIntent))).Methods("POST")
	router.Handle("/payments", verify(http.HandlerFunc(paymentHandler.CapturePayment))).Methods("POST")
	router.HandleFunc("/payments/{email}", paymentHandler.GetPayments).Methods("GET")

	return router
}
