package users_testing

import (
	"fmt"
	"time"

	users_dto "taskhive/internal/features/users/dto"
	users_models "taskhive/internal/features/users/models"
	users_repositories "taskhive/internal/features/users/repositories"
	users_services "taskhive/internal/features/users/services"
	test_utils "taskhive/internal/util/testing"

	"github.com/google/uuid"
)

func CreateTestUser() *users_dto.SignInResponseDTO {
	test_utils.PrepareTestDatabase()

	userID := uuid.New()
	username := "user-" + userID.String()[:8]
	email := fmt.Sprintf("%s@test.com", username)

	user := &users_models.User{
		ID:             userID,
		Username:       username,
		Email:          email,
		HashedPassword: "$2a$10$test",
		CreatedAt:      time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	if err := userRepository.CreateUser(user); err != nil {
		panic(err)
	}

	response, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	return response
}
