package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParagraphs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Paragraphs
	}{
		{name: "plain text", raw: "  One paragraph. ", want: Paragraphs{"One paragraph."}},
		{name: "encoded array", raw: `["First", "  ", "Second "]`, want: Paragraphs{"First", "Second"}},
		{name: "encoded array with numbers", raw: `["a", 2, null]`, want: Paragraphs{"a", "2"}},
		{name: "encoded object is text", raw: `{"a":1}`, want: Paragraphs{`{"a":1}`}},
		{name: "blank", raw: "   ", want: Paragraphs{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseParagraphs(tt.raw))
		})
	}
}

func TestParagraphs_UnmarshalJSON(t *testing.T) {
	var in BlogInput
	require.NoError(t, json.Unmarshal([]byte(`{"content":["One", "", "Two"]}`), &in))
	require.NotNil(t, in.Content)
	assert.Equal(t, Paragraphs{"One", "Two"}, *in.Content)

	in = BlogInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"content":"[\"A\",\"B\"]"}`), &in))
	assert.Equal(t, Paragraphs{"A", "B"}, *in.Content)

	in = BlogInput{}
	assert.Error(t, json.Unmarshal([]byte(`{"content":{"x":1}}`), &in))
}

func TestBlogService_CreateAndUpdatePost(t *testing.T) {
	uploader := &stubUploader{}
	svc := NewBlogService(newMemBlogs(), uploader)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, &BlogInput{Excerpt: ptr("no title")})
	assert.Equal(t, []string{"title"}, fieldNames(t, err))

	content := ParseParagraphs("Road trip notes")
	post, err := svc.CreatePost(ctx, &BlogInput{Title: ptr("Gorilla trekking"), Content: &content})
	require.NoError(t, err)
	assert.Equal(t, []string{"Road trip notes"}, post.Content)

	updated, err := svc.UpdatePost(ctx, post.ID, &BlogInput{ImageFile: fileHeader("cover.png")})
	require.NoError(t, err)
	assert.Equal(t, "Gorilla trekking", updated.Title)
	assert.Equal(t, "http://localhost:5000/uploads/blogs/cover.png", updated.Image)

	deleted, err := svc.DeletePost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, deleted.ID)

	_, err = svc.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, entity.ErrBlogPostNotFound)
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		raw  FormValue
		want int
	}{
		{raw: "4", want: 4},
		{raw: "1", want: 1},
		{raw: "0", want: entity.DefaultRating},
		{raw: "9", want: entity.DefaultRating},
		{raw: "great", want: entity.DefaultRating},
		{raw: "", want: entity.DefaultRating},
	}

	for _, tt := range tests {
		t.Run(string(tt.raw), func(t *testing.T) {
			assert.Equal(t, tt.want, parseRating(tt.raw))
		})
	}
}

func TestTestimonialService(t *testing.T) {
	repo := newMemTestimonials()
	svc := NewTestimonialService(repo, nil)
	ctx := context.Background()

	_, err := svc.CreateTestimonial(ctx, &TestimonialInput{Name: ptr("  ")})
	assert.ElementsMatch(t, []string{"name", "text"}, fieldNames(t, err))

	created, err := svc.CreateTestimonial(ctx, &TestimonialInput{
		Name: ptr(" Amina "),
		Text: ptr("Smooth pickup at Entebbe"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Amina", created.Name)
	assert.Equal(t, entity.DefaultRating, created.Rating)
	assert.True(t, created.IsActive)

	_, err = svc.UpdateTestimonial(ctx, created.ID, &TestimonialInput{
		Rating:   ptr(FormValue("3")),
		IsActive: ptr(FormValue("false")),
	})
	require.NoError(t, err)

	public, err := svc.ListTestimonials(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, public)

	all, err := svc.ListTestimonials(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 3, all[0].Rating)

	require.NoError(t, svc.DeleteTestimonial(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteTestimonial(ctx, created.ID), entity.ErrTestimonialNotFound)
}

func TestNewsletterService_Subscribe(t *testing.T) {
	repo := newMemSubscribers()
	events := &recordingPublisher{}
	svc := NewNewsletterService(repo, events)
	ctx := context.Background()

	for _, email := range []string{"", "not-an-email"} {
		_, err := svc.Subscribe(ctx, email)
		var verrs validation.Errors
		assert.ErrorAs(t, err, &verrs, email)
	}

	res, err := svc.Subscribe(ctx, " Reader@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, SubscribeCreated, res)
	require.Len(t, events.events, 1)
	assert.Equal(t, entity.EventSubscriberJoined, events.events[0].Type)
	assert.Equal(t, "reader@example.com", events.events[0].Email)

	res, err = svc.Subscribe(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, SubscribeAlreadyActive, res)
	assert.Equal(t, "You are already subscribed.", res.Message())

	subs, err := svc.ListSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)

	toggled, err := svc.ToggleSubscriber(ctx, subs[0].ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	res, err = svc.Subscribe(ctx, "READER@example.com")
	require.NoError(t, err)
	assert.Equal(t, SubscribeReactivated, res)
	assert.Len(t, events.events, 2)

	require.NoError(t, svc.DeleteSubscriber(ctx, subs[0].ID))
	assert.ErrorIs(t, svc.DeleteSubscriber(ctx, subs[0].ID), entity.ErrSubscriberNotFound)
}
