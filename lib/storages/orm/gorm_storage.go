package orm

import (
	"log"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/pescuma/cogmeter/lib/consoles"
	"github.com/pescuma/cogmeter/lib/model"
	"github.com/pescuma/cogmeter/lib/storages"
)

type gormStorage struct {
	mutex   sync.RWMutex
	db      *gorm.DB
	console consoles.Console

	files  *model.Files
	config *map[string]string

	sqlConfigs   map[string]*sqlConfig
	sqlFiles     map[string]*sqlFile
	sqlFunctions map[string]*sqlFunction
}

func NewGormStorage(d gorm.Dialector, console consoles.Console) (storages.Storage, error) {
	l := logger.New(
		log.New(console.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{
		NamingStrategy: &NamingStrategy{},
		Logger:         l,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error opening database")
	}

	// sqlite serializes writes, and a :memory: database lives in a single connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "error opening database")
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&sqlConfig{},
		&sqlFile{},
		&sqlFunction{},
	)
	if err != nil {
		return nil, errors.Wrap(err, "error creating tables")
	}

	return &gormStorage{
		db:      db,
		console: console,
	}, nil
}

func (s *gormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func createCache[T sqlTable](rows []T) map[string]T {
	return lo.Associate(rows, func(i T) (string, T) {
		return i.CacheKey(), i
	})
}

func (s *gormStorage) LoadFiles() (*model.Files, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.files != nil {
		return s.files, nil
	}

	s.console.Printf("Loading files...\n")

	result := model.NewFiles()

	var files []*sqlFile
	err := s.db.Find(&files).Error
	if err != nil {
		return nil, errors.Wrap(err, "error loading files")
	}

	s.sqlFiles = createCache(files)

	var fns []*sqlFunction
	err = s.db.Find(&fns).Error
	if err != nil {
		return nil, errors.Wrap(err, "error loading functions")
	}

	s.sqlFunctions = createCache(fns)

	fnsByFile := lo.GroupBy(fns, func(sf *sqlFunction) model.ID { return sf.FileID })

	for _, sf := range files {
		f := sf.ToModel()

		ffs := fnsByFile[sf.ID]
		sort.Slice(ffs, func(i, j int) bool {
			if ffs[i].Line != ffs[j].Line {
				return ffs[i].Line < ffs[j].Line
			}
			if ffs[i].Column != ffs[j].Column {
				return ffs[i].Column < ffs[j].Column
			}
			return ffs[i].ID < ffs[j].ID
		})

		f.Functions = lo.Map(ffs, func(sf *sqlFunction, _ int) *model.Function { return sf.ToModel() })

		result.AddFromStorage(f)
	}

	s.files = result
	return result, nil
}

func (s *gormStorage) WriteFiles() error {
	if s.files == nil {
		return nil
	}

	return s.writeFiles(s.files.List())
}

func (s *gormStorage) WriteFile(file *model.File) error {
	if s.files == nil {
		return errors.New("files not loaded")
	}

	return s.writeFiles([]*model.File{file})
}

func (s *gormStorage) writeFiles(all []*model.File) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sqlFiles := prepareChanges(all, newSqlFile, &s.sqlFiles)

	written := map[model.ID]bool{}
	current := map[model.ID]bool{}
	var sqlFunctions []*sqlFunction
	for _, f := range all {
		written[f.ID] = true

		for _, fn := range f.Functions {
			current[fn.ID] = true

			sf := newSqlFunction(fn)
			if prepareChange(&s.sqlFunctions, sf) {
				sqlFunctions = append(sqlFunctions, sf)
			}
		}
	}

	var deleted []model.ID
	for k, sf := range s.sqlFunctions {
		if written[sf.FileID] && !current[sf.ID] {
			deleted = append(deleted, sf.ID)
			delete(s.sqlFunctions, k)
		}
	}

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	if len(sqlFiles) > 0 {
		err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlFiles).Error
		if err != nil {
			return errors.Wrap(err, "error writing files")
		}
	}

	if len(deleted) > 0 {
		err := db.Where("id IN ?", deleted).Delete(&sqlFunction{}).Error
		if err != nil {
			return errors.Wrap(err, "error deleting functions")
		}
	}

	if len(sqlFunctions) > 0 {
		err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlFunctions).Error
		if err != nil {
			return errors.Wrap(err, "error writing functions")
		}
	}

	return nil
}

func (s *gormStorage) LoadConfig() (*map[string]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.config != nil {
		return s.config, nil
	}

	result := map[string]string{}

	var sqlConfigs []*sqlConfig
	err := s.db.Find(&sqlConfigs).Error
	if err != nil {
		return nil, errors.Wrap(err, "error loading config")
	}

	s.sqlConfigs = createCache(sqlConfigs)

	for _, sc := range sqlConfigs {
		result[sc.Key] = sc.Value
	}

	s.config = &result
	return &result, nil
}

func (s *gormStorage) WriteConfig() error {
	if s.config == nil {
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var sqlConfigs []*sqlConfig
	for k, v := range *s.config {
		sc := newSqlConfig(k, v)
		if prepareChange(&s.sqlConfigs, sc) {
			sqlConfigs = append(sqlConfigs, sc)
		}
	}

	var deleted []string
	for k := range s.sqlConfigs {
		if _, ok := (*s.config)[k]; !ok {
			deleted = append(deleted, k)
			delete(s.sqlConfigs, k)
		}
	}

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	if len(sqlConfigs) > 0 {
		err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlConfigs).Error
		if err != nil {
			return errors.Wrap(err, "error writing config")
		}
	}

	if len(deleted) > 0 {
		err := db.Where(clause.IN{Column: clause.Column{Name: "key"}, Values: lo.ToAnySlice(deleted)}).Delete(&sqlConfig{}).Error
		if err != nil {
			return errors.Wrap(err, "error deleting config")
		}
	}

	return nil
}

func prepareChanges[S sqlTable, M any](models []M, toSql func(M) S, cache *map[string]S) []S {
	var result []S
	for _, m := range models {
		s := toSql(m)
		if prepareChange(cache, s) {
			result = append(result, s)
		}
	}
	return result
}

// prepareChange returns false when the row is equal to the cached one, and
// updates the cache otherwise.
func prepareChange[T sqlTable](byID *map[string]T, n T) bool {
	if *byID == nil {
		*byID = map[string]T{}
	}

	o, ok := (*byID)[n.CacheKey()]
	if ok {
		ro := reflect.Indirect(reflect.ValueOf(o))
		rn := reflect.Indirect(reflect.ValueOf(n))

		rn.FieldByName("CreatedAt").Set(ro.FieldByName("CreatedAt"))
		rn.FieldByName("UpdatedAt").Set(ro.FieldByName("UpdatedAt"))
	}

	if ok && reflect.DeepEqual(n, o) {
		return false
	} else {
		(*byID)[n.CacheKey()] = n
		return true
	}
}
