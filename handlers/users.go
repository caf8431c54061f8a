package handlers

import (
	_ "embed"
	"errors"
	"fmt"
	"shop-api/app"
	"shop-api/database"
	"shop-api/models"
	"shop-api/response"
	"shop-api/router"
	"shop-api/schema"

	"golang.org/x/crypto/bcrypt"
)

//go:embed schemas/user-update.json
var userUpdateDocument []byte

var userUpdateSchema = schema.MustJSON(userUpdateDocument)

// UserRoutes returns the typed user routes, relative to their mount point
func UserRoutes(a *app.App) []router.Route {
	params := schema.Struct[models.UserParams](a.Validator)

	return []router.Route{
		router.Get("/").
			Query(schema.Struct[models.UserQuery](a.Validator)).
			Handler(listUsers(a)),
		router.Get("/:id").
			Param(params).
			Handler(getUser(a)),
		router.Post("/").
			Body(schema.OneOrMany[models.CreateUserRequest](a.Validator)).
			Handler(createUsers(a)),
		router.Put("/:id").
			Param(params).
			Body(userUpdateSchema).
			Handler(updateUser(a)),
		router.Delete("/:id").
			Param(params).
			Handler(deleteUser(a)),
	}
}

func listUsers(a *app.App) router.TypedHandler {
	return func(c *router.Context) (*response.Result, error) {
		query := router.Query[models.UserQuery](c)

		users, err := a.Repo.ListUsers(c.Ctx.UserContext(), query.Email)
		if err != nil {
			return nil, err
		}
		return response.OK(users), nil
	}
}

func getUser(a *app.App) router.TypedHandler {
	return func(c *router.Context) (*response.Result, error) {
		params := router.Params[models.UserParams](c)

		user, err := a.Repo.GetUser(c.Ctx.UserContext(), params.ID)
		if err != nil {
			return nil, userError(err)
		}
		return response.OK(user), nil
	}
}

// createUsers hashes every password and stores the users whose email is free
func createUsers(a *app.App) router.TypedHandler {
	return func(c *router.Context) (*response.Result, error) {
		payload := router.Body[schema.Payload[models.CreateUserRequest]](c)

		items := payload.Items()
		users := make([]models.User, len(items))
		for i, item := range items {
			hash, err := hashPassword(item.Password)
			if err != nil {
				return nil, err
			}
			users[i] = models.User{Username: item.Username, Email: item.Email, Password: hash}
		}

		stored, err := a.Repo.CreateUsers(c.Ctx.UserContext(), users)
		if err != nil {
			return nil, userError(err)
		}

		return response.Created("User created successfully", stored), nil
	}
}

func updateUser(a *app.App) router.TypedHandler {
	return func(c *router.Context) (*response.Result, error) {
		params := router.Params[models.UserParams](c)
		body := router.Body[map[string]any](c)

		fields := make(map[string]any, len(body))
		for key, value := range body {
			fields[key] = value
		}
		if password, ok := fields["password"].(string); ok {
			hash, err := hashPassword(password)
			if err != nil {
				return nil, err
			}
			fields["password"] = hash
		}

		user, err := a.Repo.UpdateUser(c.Ctx.UserContext(), params.ID, fields)
		if err != nil {
			return nil, userError(err)
		}

		return response.WithMessage("User updated successfully", user), nil
	}
}

func deleteUser(a *app.App) router.TypedHandler {
	return func(c *router.Context) (*response.Result, error) {
		params := router.Params[models.UserParams](c)
		ctx := c.Ctx.UserContext()

		if _, err := a.Repo.GetUser(ctx, params.ID); err != nil {
			return nil, userError(err)
		}
		if err := a.Repo.DeleteUser(ctx, params.ID); err != nil {
			return nil, userError(err)
		}

		return response.WithMessage("User deleted successfully", nil), nil
	}
}

var errEmailTaken = errors.New("email is already taken")

func userError(err error) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return response.NotFound("User not found")
	case errors.Is(err, database.ErrDuplicate):
		return response.Validation(schema.PartBody, errEmailTaken)
	default:
		return err
	}
}

// hashPassword reports bcrypt's 72 byte limit as a body validation error
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", response.Validation(schema.PartBody, errors.New("password must be at most 72 bytes"))
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
