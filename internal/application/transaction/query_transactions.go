package transaction

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/genre"
	"github.com/xiebiao/bookstore-admin/internal/domain/transaction"
	"github.com/xiebiao/bookstore-admin/internal/domain/user"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// QueryTransactionsUseCase 交易查询用例(详情+列表)
// 用户名、图书标题与分类通过批量查询补全,图书被删除时留空
type QueryTransactionsUseCase struct {
	txRepo    transaction.Repository
	bookRepo  book.Repository
	genreRepo genre.Repository
	userRepo  user.Repository
}

// NewQueryTransactionsUseCase 创建交易查询用例
func NewQueryTransactionsUseCase(
	txRepo transaction.Repository,
	bookRepo book.Repository,
	genreRepo genre.Repository,
	userRepo user.Repository,
) *QueryTransactionsUseCase {
	return &QueryTransactionsUseCase{
		txRepo:    txRepo,
		bookRepo:  bookRepo,
		genreRepo: genreRepo,
		userRepo:  userRepo,
	}
}

// Get 查询交易详情
func (uc *QueryTransactionsUseCase) Get(ctx context.Context, id uint) (*TransactionDTO, error) {
	t, err := uc.txRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	username := ""
	if u, err := uc.userRepo.FindByID(ctx, t.UserID); err == nil {
		username = u.Username
	}

	books, err := uc.bookRefs(ctx, []*transaction.Transaction{t})
	if err != nil {
		return nil, err
	}

	dto := toTransactionDTO(t, username, books)
	return &dto, nil
}

// List 分页查询交易列表
func (uc *QueryTransactionsUseCase) List(ctx context.Context, page, pageSize int) (*TransactionListResult, error) {
	txs, total, err := uc.txRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	books, err := uc.bookRefs(ctx, txs)
	if err != nil {
		return nil, err
	}

	usernames, err := uc.usernames(ctx, txs)
	if err != nil {
		return nil, err
	}

	items := make([]TransactionDTO, 0, len(txs))
	for _, t := range txs {
		items = append(items, toTransactionDTO(t, usernames[t.UserID], books))
	}
	return &TransactionListResult{Items: items, Total: total}, nil
}

// bookRefs 批量查询交易涉及的图书标题与所属分类
func (uc *QueryTransactionsUseCase) bookRefs(ctx context.Context, txs []*transaction.Transaction) (map[uint]bookRef, error) {
	seen := make(map[uint]bool)
	var ids []uint
	for _, t := range txs {
		for _, d := range t.Details {
			if !seen[d.BookID] {
				seen[d.BookID] = true
				ids = append(ids, d.BookID)
			}
		}
	}

	books, err := uc.bookRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	genreSeen := make(map[uint]bool)
	var genreIDs []uint
	for _, b := range books {
		if !genreSeen[b.GenreID] {
			genreSeen[b.GenreID] = true
			genreIDs = append(genreIDs, b.GenreID)
		}
	}
	genres, err := uc.genreRepo.FindByIDs(ctx, genreIDs)
	if err != nil {
		return nil, err
	}
	genreNames := make(map[uint]string, len(genres))
	for _, g := range genres {
		genreNames[g.ID] = g.Name
	}

	refs := make(map[uint]bookRef, len(books))
	for _, b := range books {
		refs[b.ID] = bookRef{
			Title:     b.Title,
			GenreID:   b.GenreID,
			GenreName: genreNames[b.GenreID],
		}
	}
	return refs, nil
}

// usernames 批量查询交易的经手用户名
// 用户数通常远小于交易数,逐个查询+去重缓存即可
func (uc *QueryTransactionsUseCase) usernames(ctx context.Context, txs []*transaction.Transaction) (map[uint]string, error) {
	names := make(map[uint]string)
	for _, t := range txs {
		if _, ok := names[t.UserID]; ok {
			continue
		}
		u, err := uc.userRepo.FindByID(ctx, t.UserID)
		if err != nil {
			if apperrors.GetAppError(err).Code == apperrors.ErrCodeUserNotFound {
				names[t.UserID] = ""
				continue
			}
			return nil, err
		}
		names[t.UserID] = u.Username
	}
	return names, nil
}
