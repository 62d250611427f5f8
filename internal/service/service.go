package service

import (
	"blogapi/internal/repository"
	"blogapi/internal/storage"
)

type Service struct {
	User    UserService
	Post    PostService
	Comment CommentService
}

func NewService(rep *repository.Repository, store storage.Storage) *Service {
	rules := newRules()
	return &Service{
		User:    NewUserService(rep.User, store, rules),
		Post:    NewPostService(rep.Post, rep.User, rules),
		Comment: NewCommentService(rep.Comment, rep.Post, rep.User, rules),
	}
}
