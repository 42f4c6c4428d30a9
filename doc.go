// Package randomuser is a client for the randomuser.me API, which generates
// synthetic person records.
//
// A Generator owns the transport and can be shared. Filters are applied
// through a Builder obtained from Generator.Get; every filter returns a new
// Builder, and one of the Fetch methods sends exactly one request.
//
// Basic Usage:
//
//	gen := randomuser.NewGenerator()
//
//	user, err := gen.FetchOne(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(user.Name.Full())
//
// Filters:
//
//	// Five Australian or Irish women with long mixed-case passwords
//	users, err := gen.Get().
//	    Gender(randomuser.Female).
//	    Nationalities(randomuser.Australian, randomuser.Irish).
//	    Password("upper,lower,special,12-24").
//	    Fetch(ctx, 5)
//
// Gender:
//
// The upstream's own gender field is not trusted. After decoding, the gender
// of every user is replaced with the set passed to Builder.Gender or, when no
// gender filter was given, with a random identity chosen independently for
// each user. Code that needs the upstream's value should not rely on
// User.Gender.
//
// Errors:
//
// Failed fetches return an *Error whose Kind is KindTransport, KindAPI or
// KindFormat. Use errors.Is with ErrTransport, ErrAPI or ErrFormat to branch:
//
//	if errors.Is(err, randomuser.ErrAPI) {
//	    msg, _ := randomuser.APIMessage(err)
//	    fmt.Println("upstream said:", msg)
//	}
package randomuser
