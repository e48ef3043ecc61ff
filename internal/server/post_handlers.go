package server

import (
	"devlink/internal/models"
	"devlink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost creates a new post authored by the caller.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID: currentUserID(c),
		Text:   body.Text,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// GetPosts returns all posts, most recent first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPost returns a single post by id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost removes the caller's own post.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), currentUserID(c), postID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Post removed"})
}

// LikePost records the caller's like and returns the updated like list.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	likes, err := s.postService.LikePost(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(likes)
}

// UnlikePost removes the caller's like and returns the updated like list.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	likes, err := s.postService.UnlikePost(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(likes)
}

// AddComment adds a comment to a post and returns the updated comment list.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	comments, err := s.postService.AddComment(c.UserContext(), service.AddCommentInput{
		UserID: currentUserID(c),
		PostID: postID,
		Text:   body.Text,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}

// RemoveComment deletes the caller's own comment and returns the updated
// comment list.
func (s *Server) RemoveComment(c *fiber.Ctx) error {
	postID, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}
	commentID := c.Params("comment_id")

	comments, err := s.postService.RemoveComment(c.UserContext(), currentUserID(c), postID, commentID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}
