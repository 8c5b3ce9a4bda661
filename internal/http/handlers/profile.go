package handlers

import "pickl/internal/domain"

// Static "My Closet" display items on the profile screen. They are not
// catalog products and cannot be opened, liked, or bought.
var closetItems = []domain.ClosetItem{
	{ID: "c1", Title: "90s Denim Jacket", Brand: "Diesel", Price: 120,
		Image: "https://lh3.googleusercontent.com/aida-public/AB6AXuCguahlZ3lmoy1rRaAcKL78EvmiNekB8FGvyYPGaQIS4VrBnQwyjHqGdNvXa3zrSEtu-Qwh4EyqxW0koMBCXjaimVo_PwN_VIvgi4Xy_rAKGi6XL3nsSX-LPtQY2gac5dk_eelmQk_k_Pzz5fKpQt64iIzKYCTrvE1JTW2-veQyxa__o-5muOIKDCuGt9MVizf471nux2_ZxLgH_o4li8PWp4R2OYTMGlAOQHlLKrWUFbHpVRFeY9BWTk_fcAQW4-Ct_IblgegruV8"},
	{ID: "c2", Title: "Dunk Low Retro", Brand: "Nike", Price: 250,
		Image: "https://lh3.googleusercontent.com/aida-public/AB6AXuDl5p8S4ir8nNrHlwKFGh6OYQWb5CZWmWM271WYtIsbBtHz13BxEA1sCUqlr5LK5TWoHHN3WcTYKB_NVYnFW-GavcAR8mrZsPQut_nX55QLYx-rImZxMrOoAR7Wpthr9gopiU0R7qsy1K9SG-PMNTynU3KyNZ4sKgAyy4cC45myc9FavMKIOqlNMBY5hJ1MSDKDK6cbm1A4E-Fv-fY7Ucf2Awbyeqp4VRRdIjVpb_PbkNL95YX4oPXJWyp--Oj0-U138qf0qoPjKHI"},
	{ID: "c3", Title: "Akira Vintage Tee", Brand: "Thrift", Price: 85,
		Image: "https://lh3.googleusercontent.com/aida-public/AB6AXuCEXSVVbIUG_UDai8OdyrVuQbljh38SkfecJsGKyjYP9AMKgRsUpxrwSZOnFuPzTn6ai3Jh3JdY3JELKfPFtJDsXsUB2OUtQ5ZMRKeoV43OEaASBPRHc7wlm_PJAsfKiJeKL827aawFHuFR6BmGd9vslXfpY-6XMG54adqw6ztj2-cCE4xi006awUeEM9fwRlfghSMUUI8xqy4CInBYOr5_nZpfbMd7h018mMpcvqrSxkS89kaojXFCMME5BMmnEvalzy9ULp7tiG8"},
	{ID: "c4", Title: "Tech Fleece Cargo", Brand: "Stone Island", Price: 300,
		Image: "https://lh3.googleusercontent.com/aida-public/AB6AXuDfDfzm79cXQsl_Dj6zVP8gLyFgyP7d5_a0ta9bBdB0g-N0L86eVKZvSMUpGSXjT-qaxlgQQWch00No63eb492pTSn02Zdrtl2iQFRQpIBVxqgVqRSB8i03_7xl-ZAGmWZUhcLVB2dW4BOB2i1vhJF_V_dnRhx8zMLAp7mwGGi9t3Y7mFAxT4_oprWa_nfrowvRyzT5Y1nrFuWGZSGsipHS3gsm8bhMobu7jAdrDd6e-nIHGNmn4LU-uBYVRleJZozHKHK4WTn40tA"},
}
