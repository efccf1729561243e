package main

import (
	"fmt"
	"strconv"

	"retrolog/internal/client"
	"retrolog/internal/validation"
	"retrolog/internal/view"

	"github.com/spf13/cobra"
)

var (
	searchQuery   string
	createTitle   string
	createContent string
	createImage   string
	editTitle     string
	editContent   string
	editImage     string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Browse and manage blog posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts := api.ListVisiblePosts(cmd.Context())
		posts = view.FilterPosts(posts, searchQuery)

		if len(posts) == 0 {
			fmt.Println("> No posts found")
			return nil
		}

		for _, p := range posts {
			fmt.Printf("#%s  %s\n", p.ID, p.Title)
			fmt.Printf("    by %s on %s · %d min read\n",
				p.Author, p.CreatedAt.Format("Jan 2, 2006"), view.ReadingTime(p.Content))
			fmt.Printf("    %s\n\n", view.TruncateContent(p.Content, view.MaxPreviewLen))
		}
		return nil
	},
}

var postsReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Read a single post with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q", args[0])
		}

		post := api.GetPost(cmd.Context(), id)
		if post == nil {
			return fmt.Errorf("post %d not found", id)
		}

		fmt.Printf("%s\n", post.Title)
		fmt.Printf("by %s on %s · %d min read\n",
			post.Author, post.CreatedAt.Format("Jan 2, 2006"), view.ReadingTime(post.Content))
		if post.EditedAt != nil {
			fmt.Printf("edited %s\n", post.EditedAt.Format("Jan 2, 2006"))
		}
		fmt.Println()
		for _, paragraph := range view.Paragraphs(post.Content) {
			fmt.Printf("%s\n\n", paragraph)
		}

		comments := api.ListComments(cmd.Context(), id)
		fmt.Printf("--- %d comment(s) ---\n", len(comments))
		for _, comment := range comments {
			fmt.Printf("%s (%s): %s\n",
				comment.UserName, comment.CreatedAt.Format("Jan 2, 2006 15:04"), comment.Content)
		}
		return nil
	},
}

var postsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new post",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		if err := validation.ValidateTitle(createTitle); err != nil {
			return err
		}
		if err := validation.ValidateContent(createContent); err != nil {
			return err
		}

		state := store.Current()
		post := api.CreatePost(cmd.Context(), client.CreatePostInput{
			Title:   createTitle,
			Content: createContent,
			Author:  state.User.Name,
			Image:   createImage,
			UserID:  state.User.ID.Int64(),
		}, state.User.Token)
		if post == nil {
			return fmt.Errorf("creating post failed")
		}

		fmt.Printf("Created post #%s: %s\n", post.ID, post.Title)
		return nil
	},
}

var postsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit one of your posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q", args[0])
		}

		post := api.GetPost(cmd.Context(), id)
		if post == nil {
			return fmt.Errorf("post %d not found", id)
		}
		state := store.Current()
		if !view.IsOwner(*post, state) {
			return fmt.Errorf("you can only edit your own posts")
		}

		// Flags default to the current values so a partial edit is possible.
		title, content, image := post.Title, post.Content, post.Image
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		if cmd.Flags().Changed("content") {
			content = editContent
		}
		if cmd.Flags().Changed("image") {
			image = editImage
		}
		if err := validation.ValidateTitle(title); err != nil {
			return err
		}
		if err := validation.ValidateContent(content); err != nil {
			return err
		}

		updated := api.UpdatePost(cmd.Context(), id, client.UpdatePostInput{
			Title:   title,
			Content: content,
			Image:   image,
		}, state.User.Token)
		if updated == nil {
			return fmt.Errorf("updating post failed")
		}

		fmt.Printf("Updated post #%s\n", updated.ID)
		return nil
	},
}

var postsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one of your posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q", args[0])
		}

		post := api.GetPost(cmd.Context(), id)
		if post == nil {
			return fmt.Errorf("post %d not found", id)
		}
		state := store.Current()
		if !view.IsOwner(*post, state) {
			return fmt.Errorf("you can only delete your own posts")
		}

		if !api.DeletePost(cmd.Context(), id, state.User.Token) {
			return fmt.Errorf("deleting post failed")
		}
		fmt.Printf("Deleted post #%d\n", id)
		return nil
	},
}

func init() {
	postsListCmd.Flags().StringVar(&searchQuery, "search", "", "filter posts by title, content, or author")

	postsCreateCmd.Flags().StringVar(&createTitle, "title", "", "post title")
	postsCreateCmd.Flags().StringVar(&createContent, "content", "", "post content (blank line separates paragraphs)")
	postsCreateCmd.Flags().StringVar(&createImage, "image", "", "optional featured image URL")

	postsEditCmd.Flags().StringVar(&editTitle, "title", "", "new post title")
	postsEditCmd.Flags().StringVar(&editContent, "content", "", "new post content")
	postsEditCmd.Flags().StringVar(&editImage, "image", "", "new featured image URL")

	postsCmd.AddCommand(postsListCmd)
	postsCmd.AddCommand(postsReadCmd)
	postsCmd.AddCommand(postsCreateCmd)
	postsCmd.AddCommand(postsEditCmd)
	postsCmd.AddCommand(postsDeleteCmd)
}
