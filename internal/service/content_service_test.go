package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siphore/huddle-api/internal/media"
	"github.com/siphore/huddle-api/internal/service"
)

func testNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return node
}

func TestArticleCreateAndDelete(t *testing.T) {
	host := &fakeHost{}
	svc := service.NewArticleService(newMemArticleRepo(), host, testNode(t), zap.NewNop())
	ctx := context.Background()

	article, err := svc.Create(ctx, service.ArticleInput{
		Title:   "Preseason checklist",
		Content: "What to prepare before the first practice.",
		Author:  "M. Keller",
		Tags:    []string{"preseason", "planning"},
		Type:    "article",
	}, upload("cover.jpg"))
	require.NoError(t, err)
	require.NotEmpty(t, article.Image)
	require.Equal(t, []string{"preseason", "planning"}, article.Tags)

	_, err = svc.Delete(ctx, article.ID)
	require.NoError(t, err)
	require.Len(t, host.deletes, 1)
	require.True(t, strings.HasPrefix(host.deletes[0], "image:"))
}

func TestArticleCreateValidation(t *testing.T) {
	svc := service.NewArticleService(newMemArticleRepo(), &fakeHost{}, testNode(t), zap.NewNop())

	_, err := svc.Create(context.Background(), service.ArticleInput{Type: "gossip"}, media.File{})

	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "Title is required")
	require.Contains(t, svcErr.Fields, "Type must be news or article")
	require.Contains(t, svcErr.Fields, "Image file is required")
}

func TestPodcastCreateAndDelete(t *testing.T) {
	host := &fakeHost{}
	svc := service.NewPodcastService(newMemPodcastRepo(), host, testNode(t), zap.NewNop())
	ctx := context.Background()

	podcast, err := svc.Create(ctx, service.PodcastInput{
		Number:      7,
		Theme:       "leadership",
		Title:       "Building a staff",
		Guest:       "A. Morand",
		Author:      "Huddle",
		Description: "Hiring and keeping assistant coaches.",
	}, upload("ep7.mp3"), upload("ep7.jpg"))
	require.NoError(t, err)
	require.Equal(t, 7, podcast.Number)
	require.NotEmpty(t, podcast.Audio)
	require.NotEmpty(t, podcast.Image)

	_, err = svc.Delete(ctx, podcast.ID)
	require.NoError(t, err)
	require.Len(t, host.deletes, 2)

	var kinds []string
	for _, d := range host.deletes {
		kinds = append(kinds, strings.SplitN(d, ":", 2)[0])
	}
	require.Contains(t, kinds, "audio")
	require.Contains(t, kinds, "image")
}

func TestPodcastCreateValidation(t *testing.T) {
	svc := service.NewPodcastService(newMemPodcastRepo(), &fakeHost{}, testNode(t), zap.NewNop())

	_, err := svc.Create(context.Background(), service.PodcastInput{}, media.File{}, media.File{})

	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "Number must be a positive integer")
	require.Contains(t, svcErr.Fields, "Both audio and image files are required")
}

func TestPodcastUploadFailureLeavesNothingBehind(t *testing.T) {
	host := &fakeHost{uploadErr: errors.New("bucket unavailable")}
	repo := newMemPodcastRepo()
	svc := service.NewPodcastService(repo, host, testNode(t), zap.NewNop())

	_, err := svc.Create(context.Background(), service.PodcastInput{
		Number:      1,
		Theme:       "tactics",
		Title:       "Episode one",
		Guest:       "Guest",
		Author:      "Huddle",
		Description: "Pilot.",
	}, upload("ep1.mp3"), upload("ep1.jpg"))

	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 500, svcErr.Status)

	podcasts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, podcasts)
}

func TestOpportunityCreate(t *testing.T) {
	svc := service.NewOpportunityService(newMemOpportunityRepo(), testNode(t), zap.NewNop())
	ctx := context.Background()

	opportunity, err := svc.Create(ctx, service.OpportunityInput{
		Title:       "U16 head coach",
		Description: "Two practices a week plus game day.",
		Club:        "Lausanne Owls",
		License:     "Diploma D",
		NPA:         1018,
		Location:    "Lausanne",
		Contract:    "volunteer",
	})
	require.NoError(t, err)
	require.NotZero(t, opportunity.ID)

	fetched, err := svc.Get(ctx, opportunity.ID)
	require.NoError(t, err)
	require.Equal(t, "U16 head coach", fetched.Title)
}

func TestOpportunityCreateValidation(t *testing.T) {
	svc := service.NewOpportunityService(newMemOpportunityRepo(), testNode(t), zap.NewNop())

	_, err := svc.Create(context.Background(), service.OpportunityInput{
		License:  "Z",
		Contract: "internship",
		NPA:      -1,
	})

	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "Title is required")
	require.Contains(t, svcErr.Fields, "License must be a recognized coaching license")
	require.Contains(t, svcErr.Fields, "NPA must be a positive integer")
	require.Contains(t, svcErr.Fields, "Contract must be part-time, volunteer or full-time")
}

func TestOrganizerCreateValidation(t *testing.T) {
	svc := service.NewOrganizerService(newMemOrganizerRepo(), testNode(t), zap.NewNop())

	_, err := svc.Create(context.Background(), service.OrganizerInput{
		Name: "a name that is way too long",
	})

	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "Name must not exceed 16 characters")
	require.Contains(t, svcErr.Fields, "Email is required")
}

func TestOrganizerDuplicateEmail(t *testing.T) {
	svc := service.NewOrganizerService(newMemOrganizerRepo(), testNode(t), zap.NewNop())
	ctx := context.Background()

	input := service.OrganizerInput{
		Name:    "Huddle",
		Address: "Route de Romanel 20",
		Phone:   "+41 21 000 00 00",
		Email:   "hello@example.com",
		Link:    "https://example.com",
	}
	_, err := svc.Create(ctx, input)
	require.NoError(t, err)

	input.Name = "Other"
	_, err = svc.Create(ctx, input)
	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 409, svcErr.Status)
	require.Equal(t, "Email already registered", svcErr.Message)
}
