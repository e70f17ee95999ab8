package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Канонические подписи полей из бизнес-словаря. Внешние табличные данные
// (CSV) приходят именно с такими заголовками; внутри системы записи имеют
// фиксированную форму, а соответствие подпись<->поле задаётся явно здесь.
const (
	LabelAnalyticTypeID   = "Код вида аналитики"
	LabelAnalyticTypeName = "Вид аналитики"
	LabelAnalyticID       = "Код аналитики"
	LabelAnalyticName     = "Аналитика"
	LabelIndicatorID      = "Код показателя"
	LabelIndicatorName    = "Показатель"
	LabelAnalyticType1    = "Код вида аналитики 1"
	LabelAnalyticType2    = "Код вида аналитики 2"
	LabelAnalyticType3    = "Код вида аналитики 3"
	LabelAnalytic1        = "Код аналитики 1"
	LabelAnalytic2        = "Код аналитики 2"
	LabelAnalytic3        = "Код аналитики 3"
	LabelSum              = "Сумма"
	LabelPeriodStart      = "Дата начала периода"
	LabelPeriodEnd        = "Дата конца периода"
	LabelValuePeriodEnd   = "Дата окончания периода"
	LabelDZO              = "ДЗО"
	LabelDZOID            = "Идентификатор ДЗО"
	LabelDZOName          = "Наименование"
	LabelDZOAddress       = "Адрес"
	LabelUserID           = "Идентификационный номер"
	LabelUserFullName     = "ФИО"
	LabelUserLogin        = "Логин"
	LabelUserPassword     = "Пароль"
	LabelUserRole         = "Роль"
)

// Fields renders the record into its flat labeled form.
func (a AnalyticType) Fields() map[string]string {
	return map[string]string{
		LabelAnalyticTypeID:   a.ID,
		LabelAnalyticTypeName: a.Name,
	}
}

func AnalyticTypeFromFields(m map[string]string) AnalyticType {
	return AnalyticType{
		ID:   m[LabelAnalyticTypeID],
		Name: m[LabelAnalyticTypeName],
	}
}

func (a Analytic) Fields() map[string]string {
	return map[string]string{
		LabelAnalyticTypeID: a.AnalyticTypeID,
		LabelAnalyticID:     a.ID,
		LabelAnalyticName:   a.Name,
		LabelPeriodStart:    FormatDate(a.PeriodStart),
		LabelPeriodEnd:      FormatDate(a.PeriodEnd),
	}
}

func AnalyticFromFields(m map[string]string) Analytic {
	return Analytic{
		AnalyticTypeID: m[LabelAnalyticTypeID],
		ID:             m[LabelAnalyticID],
		Name:           m[LabelAnalyticName],
		PeriodStart:    ParseDateString(m[LabelPeriodStart]),
		PeriodEnd:      ParseDateString(m[LabelPeriodEnd]),
	}
}

func (i Indicator) Fields() map[string]string {
	return map[string]string{
		LabelIndicatorID:   i.ID,
		LabelIndicatorName: i.Name,
		LabelAnalyticType1: StringOrEmpty(i.AnalyticType1),
		LabelAnalyticType2: StringOrEmpty(i.AnalyticType2),
		LabelAnalyticType3: StringOrEmpty(i.AnalyticType3),
		LabelPeriodStart:   FormatDate(i.PeriodStart),
		LabelPeriodEnd:     FormatDate(i.PeriodEnd),
	}
}

func IndicatorFromFields(m map[string]string) Indicator {
	at1, at2, at3 := m[LabelAnalyticType1], m[LabelAnalyticType2], m[LabelAnalyticType3]
	return Indicator{
		ID:            m[LabelIndicatorID],
		Name:          m[LabelIndicatorName],
		AnalyticType1: NullIfEmpty(&at1),
		AnalyticType2: NullIfEmpty(&at2),
		AnalyticType3: NullIfEmpty(&at3),
		PeriodStart:   ParseDateString(m[LabelPeriodStart]),
		PeriodEnd:     ParseDateString(m[LabelPeriodEnd]),
	}
}

func (v ValueIndicator) Fields() map[string]string {
	return map[string]string{
		LabelIndicatorID:    v.IndicatorID,
		LabelPeriodStart:    FormatDate(v.PeriodStart),
		LabelValuePeriodEnd: FormatDate(v.PeriodEnd),
		LabelAnalytic1:      v.Analytic1,
		LabelAnalytic2:      StringOrEmpty(v.Analytic2),
		LabelAnalytic3:      StringOrEmpty(v.Analytic3),
		LabelSum:            v.Sum.String(),
		LabelDZO:            strconv.FormatInt(v.DZOID, 10),
	}
}

func ValueIndicatorFromFields(m map[string]string) ValueIndicator {
	a2, a3 := m[LabelAnalytic2], m[LabelAnalytic3]
	sum, _ := decimal.NewFromString(m[LabelSum])
	dzoID, _ := strconv.ParseInt(m[LabelDZO], 10, 64)
	return ValueIndicator{
		IndicatorID: m[LabelIndicatorID],
		PeriodStart: ParseDateString(m[LabelPeriodStart]),
		PeriodEnd:   ParseDateString(m[LabelValuePeriodEnd]),
		Analytic1:   m[LabelAnalytic1],
		Analytic2:   NullIfEmpty(&a2),
		Analytic3:   NullIfEmpty(&a3),
		Sum:         sum,
		DZOID:       dzoID,
	}
}

func (d DZO) Fields() map[string]string {
	return map[string]string{
		LabelDZOID:      strconv.FormatInt(d.ID, 10),
		LabelDZOName:    d.Name,
		LabelDZOAddress: d.Address,
	}
}

func DZOFromFields(m map[string]string) DZO {
	id, _ := strconv.ParseInt(m[LabelDZOID], 10, 64)
	return DZO{
		ID:      id,
		Name:    m[LabelDZOName],
		Address: m[LabelDZOAddress],
	}
}

// Fields for User carries the stored hash under the password label; cleartext
// never appears here.
func (u User) Fields() map[string]string {
	return map[string]string{
		LabelUserID:       strconv.FormatInt(u.ID, 10),
		LabelUserFullName: u.FullName,
		LabelUserLogin:    u.Login,
		LabelUserPassword: u.PasswordHash,
		LabelUserRole:     u.Role,
		LabelDZO:          strconv.FormatInt(u.DZOID, 10),
	}
}

func UserFromFields(m map[string]string) User {
	id, _ := strconv.ParseInt(m[LabelUserID], 10, 64)
	dzoID, _ := strconv.ParseInt(m[LabelDZO], 10, 64)
	return User{
		ID:           id,
		FullName:     m[LabelUserFullName],
		Login:        m[LabelUserLogin],
		PasswordHash: m[LabelUserPassword],
		Role:         m[LabelUserRole],
		DZOID:        dzoID,
	}
}
