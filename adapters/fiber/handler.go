package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/fewfast/HomieRanking-BackEnd/core"
	"github.com/fewfast/HomieRanking-BackEnd/pkg/logutil"
	"github.com/fewfast/HomieRanking-BackEnd/pkg/token"
)

func (a *Adapter) signup(c fiber.Ctx) error {
	var input core.SignUpInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if _, err := a.auth.SignUp(c.Context(), input); err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "user registered successfully",
	})
}

func (a *Adapter) login(c fiber.Ctx) error {
	var input core.SignInInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := a.auth.SignIn(c.Context(), input)
	if err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message":      "login successful",
		"access_token": result.AccessToken,
		"user":         result.User,
	})
}

func (a *Adapter) logout(c fiber.Ctx) error {
	raw, _ := c.Locals("token").(string)
	if err := a.auth.SignOut(raw); err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "signed out successfully",
	})
}

func (a *Adapter) profile(c fiber.Ctx) error {
	claims := claimsFromContext(c)

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "this is your profile",
		"user": fiber.Map{
			"username": claims.Username,
		},
	})
}

func (a *Adapter) listUsers(c fiber.Ctx) error {
	users, err := a.users.List(c.Context())
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(users)
}

func (a *Adapter) getUser(c fiber.Ctx) error {
	user, following, err := a.users.Profile(c.Context(), c.Params("username"))
	if err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user":      user,
		"following": following,
	})
}

func (a *Adapter) updateProfile(c fiber.Ctx) error {
	var patch core.ProfilePatch
	if err := c.Bind().Body(&patch); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := a.users.UpdateProfile(c.Context(), claimsFromContext(c), c.Params("username"), patch)
	if err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(user)
}

func (a *Adapter) follow(c fiber.Ctx) error {
	if err := a.users.Follow(c.Context(), claimsFromContext(c), c.Params("username")); err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "now following " + c.Params("username"),
	})
}

func (a *Adapter) unfollow(c fiber.Ctx) error {
	if err := a.users.Unfollow(c.Context(), claimsFromContext(c), c.Params("username")); err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "unfollowed " + c.Params("username"),
	})
}

func (a *Adapter) createQuiz(c fiber.Ctx) error {
	var input core.QuizInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	quiz, err := a.quizzes.Create(c.Context(), claimsFromContext(c), input)
	if err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(quiz)
}

func (a *Adapter) listQuizzes(c fiber.Ctx) error {
	quizzes, err := a.quizzes.List(c.Context())
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(quizzes)
}

func (a *Adapter) getQuiz(c fiber.Ctx) error {
	quiz, err := a.quizzes.Get(c.Context(), c.Params("id"))
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(quiz)
}

func (a *Adapter) updateQuiz(c fiber.Ctx) error {
	var patch core.QuizPatch
	if err := c.Bind().Body(&patch); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	quiz, err := a.quizzes.Update(c.Context(), claimsFromContext(c), c.Params("id"), patch)
	if err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(quiz)
}

func (a *Adapter) deleteQuiz(c fiber.Ctx) error {
	if err := a.quizzes.Delete(c.Context(), claimsFromContext(c), c.Params("id")); err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "quiz deleted",
	})
}

// handleError maps service errors to HTTP responses. Unexpected faults are
// logged with detail server-side and reported to the client as a generic
// internal error.
func (a *Adapter) handleError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		logger := logutil.GetOrDefault(c.Context())
		logger.Error().Err(err).Msg("request failed")
		return c.Status(status).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// mapErrorToStatus is the single exhaustive mapping from outcome kind to
// HTTP status code.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrUsernameRequired),
		errors.Is(err, core.ErrPasswordRequired),
		errors.Is(err, core.ErrTitleRequired),
		errors.Is(err, core.ErrSelfFollow),
		errors.Is(err, core.ErrEmptyUpdate):
		return http.StatusBadRequest

	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrMissingAuthHeader),
		errors.Is(err, token.ErrInvalidToken),
		errors.Is(err, token.ErrTokenExpired),
		errors.Is(err, token.ErrTokenRevoked):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrNotOwner):
		return http.StatusForbidden

	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrQuizNotFound):
		return http.StatusNotFound

	case errors.Is(err, core.ErrUserExists):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
