package bot

import (
	"context"
	"log"
	"math/rand/v2"
	"regexp"
	"strconv"
	"time"

	"github.com/suphakit/gpu-advisor/internal/ai"
	"github.com/suphakit/gpu-advisor/internal/catalog"
	"github.com/suphakit/gpu-advisor/internal/chatlog"
	"github.com/suphakit/gpu-advisor/internal/line"
	"github.com/suphakit/gpu-advisor/internal/match"
	"github.com/suphakit/gpu-advisor/internal/session"
)

const (
	minPrice = 5000
	maxPrice = 100000
)

var numberRe = regexp.MustCompile(`(\d+)`)

// Catalog is the read side of the product store the bot needs per turn.
type Catalog interface {
	FetchAll(ctx context.Context) ([]catalog.Product, error)
}

// Service is the conversation state machine. One HandleMessage call per
// inbound text message; each call sends exactly one outbound bundle and
// writes exactly one interaction record.
type Service struct {
	sessions     session.Store
	locks        *session.Locks
	catalog      Catalog
	recorder     *chatlog.Recorder
	answerer     ai.Provider
	sender       line.Sender
	queryTimeout time.Duration
}

func NewService(sessions session.Store, cat Catalog, recorder *chatlog.Recorder, answerer ai.Provider, sender line.Sender, queryTimeout time.Duration) *Service {
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &Service{
		sessions:     sessions,
		locks:        session.NewLocks(),
		catalog:      cat,
		recorder:     recorder,
		answerer:     answerer,
		sender:       sender,
		queryTimeout: queryTimeout,
	}
}

// HandleMessage runs one turn for a user. The user's lock is held for the
// whole turn so concurrent messages from the same user cannot race on the
// session read-modify-write.
func (s *Service) HandleMessage(ctx context.Context, userID, replyToken, text string) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		log.Printf("bot: session get failed user=%s err=%v", userID, err)
		sess = nil // degrade to a fresh conversation for this turn
	}

	if sess == nil {
		sess = session.New(userID)
	}
	if !sess.Greeted {
		return s.greet(ctx, sess, replyToken, text)
	}

	switch sess.Step {
	case session.StepAwaitingPrice:
		return s.handlePrice(ctx, sess, replyToken, text)
	case session.StepAwaitingMemory:
		return s.handleMemory(ctx, sess, replyToken, text)
	default:
		return s.handleGreeting(ctx, sess, replyToken, text)
	}
}

// greet welcomes a not-yet-greeted user and shows the main menu. The
// incoming text is not interpreted; the menu is the invitation to start.
func (s *Service) greet(ctx context.Context, sess *session.Session, replyToken, text string) error {
	welcome := greetings[rand.IntN(len(greetings))] + " " + textWelcomeSuffix

	sess.Greeted = true
	sess.Step = session.StepGreeting
	s.finishTurn(ctx, sess, replyToken, text, welcome,
		replyWith(line.NewTextWithQuickReply(welcome, mainMenu())), nil)
	return nil
}

func (s *Service) handleGreeting(ctx context.Context, sess *session.Session, replyToken, text string) error {
	switch text {
	case labelRecommend:
		return s.recommend(ctx, sess, replyToken, text)

	case labelNVIDIA, labelAMD:
		if text == labelNVIDIA {
			sess.Vendor = session.VendorNVIDIA
		} else {
			sess.Vendor = session.VendorAMD
		}
		sess.Step = session.StepAwaitingPrice
		s.finishTurn(ctx, sess, replyToken, text, textAskPrice,
			replyWith(line.NewTextWithQuickReply(textAskPrice, priceMenu())), nil)
		return nil
	}

	// free text: answer GPU questions, reject the rest; both re-show the menu
	answer := textOutOfScope
	if isGPUQuestion(text) {
		answer = s.askFallback(ctx, text)
	}

	sess.Reset()
	s.finishTurn(ctx, sess, replyToken, text, answer,
		replyWith(line.NewTextWithQuickReply(answer, mainMenu())), nil)
	return nil
}

// recommend runs the fixed-bracket flow: one closest-from-below pick per
// price ceiling, pushed as a carousel after the reply token acknowledges
// the turn.
func (s *Service) recommend(ctx context.Context, sess *session.Session, replyToken, text string) error {
	products := s.fetchCatalog(ctx)
	picks := match.ClosestUnder(products, match.DefaultCeilings)

	answer := textFollowUp
	if len(picks) == 0 {
		answer = textNoRecommend
	}

	sess.Reset()
	s.finishTurn(ctx, sess, replyToken, text, answer,
		replyWith(line.NewText(textSearching)),
		resultMessages(picks, textNoRecommend))
	return nil
}

func (s *Service) handlePrice(ctx context.Context, sess *session.Session, replyToken, text string) error {
	m := numberRe.FindStringSubmatch(text)
	if m == nil {
		s.finishTurn(ctx, sess, replyToken, text, textPriceNumeric,
			replyWith(line.NewTextWithQuickReply(textPriceNumeric, priceMenu())), nil)
		return nil
	}

	price, err := strconv.Atoi(m[1])
	if err != nil || price < minPrice || price > maxPrice {
		s.finishTurn(ctx, sess, replyToken, text, textPriceRange,
			replyWith(line.NewTextWithQuickReply(textPriceRange, priceMenu())), nil)
		return nil
	}

	sess.MaxPrice = price
	sess.Step = session.StepAwaitingMemory
	s.finishTurn(ctx, sess, replyToken, text, textAskMemory,
		replyWith(line.NewTextWithQuickReply(textAskMemory, memoryMenu())), nil)
	return nil
}

func (s *Service) handleMemory(ctx context.Context, sess *session.Session, replyToken, text string) error {
	mem, ok := memoryFromLabel(text)
	if !ok {
		s.finishTurn(ctx, sess, replyToken, text, textMemoryChoices,
			replyWith(line.NewTextWithQuickReply(textMemoryChoices, memoryMenu())), nil)
		return nil
	}

	sess.MinMemoryGB = mem
	constraints := match.Constraints{
		MaxPrice:    sess.MaxPrice,
		MinMemoryGB: sess.MinMemoryGB,
		Vendor:      sess.Vendor,
	}

	products := s.fetchCatalog(ctx)
	matches := match.Filter(products, constraints)

	answer := textFollowUp
	if len(matches) == 0 {
		answer = textNoMatch
	}

	sess.Reset()
	s.finishTurn(ctx, sess, replyToken, text, answer,
		replyWith(line.NewText(textSearching)),
		resultMessages(matches, textNoMatch))
	return nil
}

func memoryFromLabel(text string) (int, bool) {
	for _, l := range memoryLabels {
		if text == l {
			m := numberRe.FindStringSubmatch(l)
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, false
			}
			return n, true
		}
	}
	return 0, false
}

// fetchCatalog reads the full catalog under the query timeout. Store errors
// degrade to an empty catalog; the turn always completes.
func (s *Service) fetchCatalog(ctx context.Context) []catalog.Product {
	fctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	products, err := s.catalog.FetchAll(fctx)
	if err != nil {
		log.Printf("bot: catalog fetch failed err=%v", err)
		return nil
	}
	return products
}

// askFallback forwards an in-domain free-text question to the answerer.
// Failures degrade to a fixed unavailability string, never a failed turn.
func (s *Service) askFallback(ctx context.Context, question string) string {
	reply, err := s.answerer.Chat(ctx, []ai.Message{
		{Role: "user", Content: question + answerPromptSuffix},
	})
	if err != nil || reply == "" {
		log.Printf("bot: fallback answerer failed err=%v", err)
		return textAIUnavailable
	}
	return reply
}

func replyWith(msgs ...line.Message) []line.Message { return msgs }

// finishTurn persists the mutated session, sends the outbound messages and
// records the interaction. The reply bundle consumes the turn's reply
// token; carousels, follow-ups and empty-result notices travel in the push
// bundle. Send failures are logged; the session write and the log still
// happen so the conversation stays consistent.
func (s *Service) finishTurn(ctx context.Context, sess *session.Session, replyToken, question, answer string, reply, push []line.Message) {
	if err := s.sessions.Save(ctx, sess); err != nil {
		log.Printf("bot: session save failed user=%s err=%v", sess.UserID, err)
	}

	if err := s.sender.Reply(ctx, replyToken, reply...); err != nil {
		log.Printf("bot: reply failed user=%s err=%v", sess.UserID, err)
	}
	if len(push) > 0 {
		if err := s.sender.Push(ctx, sess.UserID, push...); err != nil {
			log.Printf("bot: push failed user=%s err=%v", sess.UserID, err)
		}
	}

	s.recorder.Record(sess.UserID, question, answer)
}
