package content

import (
	"context"
	"testing"
)

func TestSectionRepo_GetBySlug(t *testing.T) {
	repo := NewSectionMemRepo([]Section{
		{ID: 1, Title: "About Us Section", Slug: "about-us", Body: "This is the dynamic content for the About Us page."},
		{ID: 2, Title: "Terms & Conditions", Slug: "terms-conditions", Body: "These are the terms and conditions."},
	})

	got, err := repo.GetBySlug(context.Background(), "terms-conditions")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != 2 {
		t.Fatalf("id=%d, esperado 2", got.ID)
	}

	if _, err := repo.GetBySlug(context.Background(), "nope"); err != ErrNotFound {
		t.Fatalf("err=%v, esperaba ErrNotFound", err)
	}
}

func TestSectionRepo_UpdateAndDelete(t *testing.T) {
	repo := NewSectionMemRepo(nil)
	s := &Section{Title: "Shipping Policy", Slug: "shipping", Body: "..."}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Update(context.Background(), &Section{ID: s.ID, Body: "updated"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Body != "updated" || got.Title != "Shipping Policy" {
		t.Fatalf("update parcial no respetado: %+v", got)
	}

	if ok, _ := repo.Delete(context.Background(), s.ID); !ok {
		t.Fatal("delete falló")
	}
	if ok, _ := repo.Delete(context.Background(), s.ID); ok {
		t.Fatal("segundo delete debía fallar")
	}
}

func TestFAQRepo_CRUD(t *testing.T) {
	repo := NewFAQMemRepo(nil)
	f := &FAQ{Question: "What is a photo book?", Answer: "A personalized album."}
	if err := repo.Create(context.Background(), f); err != nil {
		t.Fatal(err)
	}
	if f.ID != 1 {
		t.Fatalf("id=%d", f.ID)
	}

	if _, err := repo.Update(context.Background(), &FAQ{ID: 9, Question: "x"}); err != ErrFAQNotFound {
		t.Fatalf("err=%v", err)
	}

	got, err := repo.Update(context.Background(), &FAQ{ID: f.ID, Answer: "A printed, bound album."})
	if err != nil {
		t.Fatal(err)
	}
	if got.Question != "What is a photo book?" || got.Answer != "A printed, bound album." {
		t.Fatalf("got=%+v", got)
	}

	all, _ := repo.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("len=%d", len(all))
	}
}
