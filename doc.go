// Package oramacore provides a Go client for the OramaCore
// document-indexing and search service.
//
// Two facades cover the service's two credential scopes. The Manager
// administers collections with the deployment's master API key:
//
//	mgr, _ := oramacore.NewManager("http://localhost:8080", masterKey)
//	created, _ := mgr.CreateCollection(ctx, oramacore.NewCollectionParams{
//	    ID: "articles",
//	})
//	// created.WriteAPIKey and created.ReadAPIKey were generated for you.
//
// The Client ingests and deletes documents with a collection-scoped
// write key:
//
//	cli, _ := oramacore.NewClient("http://localhost:8080",
//	    oramacore.WithWriteAPIKey(created.WriteAPIKey),
//	)
//	cli.SetCollection("articles")
//	_ = cli.Insert(ctx, []oramacore.Document{
//	    {"id": "1", "title": "Hello"},
//	})
//
// For concurrent producers, take per-collection handles instead of the
// mutable binding:
//
//	docs := cli.Documents("articles")
//	_ = docs.Insert(ctx, batch)
//
// # Typed documents
//
// TypedCollection maps a tagged struct to documents and derives the
// collection's embeddings config from the tags:
//
//	type Article struct {
//	    ID      string `orama:"id,id"`
//	    Title   string `orama:"title,string"`
//	    Year    int    `orama:"year,number"`
//	    Summary string `orama:"summary,embedding"`
//	}
//
//	tc, _ := oramacore.NewTypedCollection[Article](cli, "articles")
//	_, _ = mgr.CreateCollection(ctx, tc.CreateParams())
//	_ = tc.Insert(ctx, articles)
package oramacore
